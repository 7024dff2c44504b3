// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrInvalidProductIDParam is returned by productCtx when the {id} path
// parameter is not a positive integer.
var ErrInvalidProductIDParam = errors.New("invalid {id} path parameter")
