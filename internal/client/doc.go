// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client of the event keeper.
//
// An [App] runs one subcommand against the server through an
// [adapter.ServerAdapter] and prints the result as JSON.
package client
