// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fnref

import "code.hybscloud.com/atomix"

// Serial identifies a mailbox within the process. References themselves
// carry no identity (they are plain two-word values); a mailbox, which
// owns queue state, gets a serial at construction so delivery endpoints
// can be told apart in logs and tables.
type Serial = uint32

// Serials come from a process-wide atomic counter, so a mailbox created
// later always carries a strictly larger serial.
var counter atomix.Uint32

func nextSerial() Serial {
	return counter.Add(1)
}
