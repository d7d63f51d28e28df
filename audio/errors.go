// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrSourceClosed = errors.New("audio source is closed")
)
