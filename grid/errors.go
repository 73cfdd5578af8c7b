// SPDX-License-Identifier: MIT

package grid

import "errors"

// ErrDataLength indicates the backing data does not hold exactly Width×Height cells.
var ErrDataLength = errors.New("grid: data length must equal width*height")
