// Copyright 2026 The Droneplay Authors
// SPDX-License-Identifier: Apache-2.0

// Package doctor implements "droneplay doctor", which checks that the
// host is ready for cage and mantra commands: privileges, the policy
// directory, the mantra root, and the sudo invocation context. The
// mantra root is the one thing it can create.
package doctor
