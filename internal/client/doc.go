// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the rexora admin client runtime.
//
// It resolves the client configuration, wires the server adapter, the local
// session store and the client services, and exposes them through a cobra
// command tree. The interactive panel from package tui is one of the
// commands and the default when none is given.
package client
