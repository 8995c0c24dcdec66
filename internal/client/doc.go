// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It runs the startup workers, restores or establishes the server session,
// drives the terminal UI and closes out the capture on exit.
package client
