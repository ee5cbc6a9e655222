// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoHTTPHandler = errors.New("no http handler to serve the CMS api")
	errNoHTTPAddress = errors.New("http address is not configured")
)
