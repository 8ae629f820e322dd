// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "errors"

// ErrUserQuit is returned when the user closes a screen before it finished.
var ErrUserQuit = errors.New("closed by user")
