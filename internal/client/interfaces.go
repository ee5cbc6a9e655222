// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

// Client is the admin client started by cmd/client. Run parses os.Args,
// executes one command or the interactive panel and returns its error.
type Client interface {
	Run() error
}
