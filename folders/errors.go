// SPDX-License-Identifier: MIT

package folders

import "errors"

var (
	// ErrNoApplication indicates an empty application name.
	ErrNoApplication = errors.New("folders: application name is empty")
	// ErrNoUserDir indicates the platform's per-user directories could not be determined.
	ErrNoUserDir = errors.New("folders: cannot determine user directories")
	// ErrEnv indicates a malformed environment override.
	ErrEnv = errors.New("folders: invalid environment override")
)
