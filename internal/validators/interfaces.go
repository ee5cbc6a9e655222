// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks CMS input before it reaches storage or the
// network.
//
// The content validator covers project metadata, the site settings document
// and reviews. Media checks (MIME prefix and size per asset kind) are plain
// functions shared by the server pipeline and the admin client, so a file
// rejected locally is rejected by the server with the same message.
package validators

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/validator_mock.go -package=mock

// Validator validates one of the CMS input types. fields optionally limits
// the check to the named fields of a partial update.
type Validator interface {
	Validate(ctx context.Context, v any, fields ...string) error
}
