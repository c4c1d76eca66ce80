package petrel

import "unicode/utf8"

// decodeInput parses raw terminal bytes into events, returning any
// incomplete trailing UTF-8 bytes so the caller can prepend them to the
// next read.
func decodeInput(data []byte) ([]Event, []byte) {
	tail := incompleteUTF8Tail(data)
	if len(tail) > 0 {
		data = data[:len(data)-len(tail)]
	}

	var events []Event
	for i := 0; i < len(data); {
		b := data[i]

		if b == 0x1b {
			ev, n := decodeEscape(data[i:])
			events = append(events, ev)
			i += n
			continue
		}

		if b < 0x20 {
			events = append(events, KeyEvent{Key: controlKey(b)})
			i++
			continue
		}

		// DEL is backspace on most terminals.
		if b == 0x7f {
			events = append(events, KeyEvent{Key: KeyBackspace})
			i++
			continue
		}

		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size == 1 {
			i++
			continue
		}
		events = append(events, KeyEvent{Key: KeyRune, Rune: r})
		i += size
	}

	return events, tail
}

// controlKey maps a control byte to its key. A few control bytes double as
// named keys (tab, enter, backspace) and report as those.
func controlKey(b byte) Key {
	switch b {
	case 0x00:
		return KeyCtrlSpace
	case 0x08:
		return KeyBackspace
	case 0x09:
		return KeyTab
	case 0x0d:
		return KeyEnter
	case 0x1b:
		return KeyEscape
	}
	if b >= 0x01 && b <= 0x1a {
		return ctrlKey(b)
	}
	return KeyNone
}

// decodeEscape parses one escape-initiated sequence starting at data[0].
// It always consumes at least one byte; unrecognized or truncated sequences
// degrade to a bare Escape key.
func decodeEscape(data []byte) (Event, int) {
	if len(data) < 2 {
		return KeyEvent{Key: KeyEscape}, 1
	}

	switch data[1] {
	case '[':
		if len(data) >= 3 && data[2] == '<' {
			if ev, n := decodeMouseSGR(data); n > 0 {
				return ev, n
			}
		}
		if key, mod, n := decodeCSI(data); n > 0 {
			if key == KeyNone {
				return KeyEvent{Key: KeyEscape}, 1
			}
			return KeyEvent{Key: key, Mod: mod}, n
		}
		return KeyEvent{Key: KeyEscape}, 1

	case 'O':
		if len(data) >= 3 {
			if key, ok := ss3Keys[data[2]]; ok {
				return KeyEvent{Key: key}, 3
			}
		}
		return KeyEvent{Key: KeyEscape}, 1

	default:
		// ESC followed by a printable is Alt+key.
		if data[1] >= 0x20 && data[1] < 0x7f {
			return KeyEvent{Key: KeyRune, Rune: rune(data[1]), Mod: ModAlt}, 2
		}
		return KeyEvent{Key: KeyEscape}, 1
	}
}

// csiFinalKeys maps CSI final bytes to keys for sequences without a tilde.
var csiFinalKeys = map[byte]Key{
	'A': KeyUp,
	'B': KeyDown,
	'C': KeyRight,
	'D': KeyLeft,
	'H': KeyHome,
	'F': KeyEnd,
	'Z': KeyBacktab,
	'P': KeyF1,
	'Q': KeyF2,
	'R': KeyF3,
	'S': KeyF4,
}

// csiTildeKeys maps the first parameter of CSI n ~ sequences to keys.
var csiTildeKeys = map[int]Key{
	1:  KeyHome,
	2:  KeyInsert,
	3:  KeyDelete,
	4:  KeyEnd,
	5:  KeyPageUp,
	6:  KeyPageDown,
	11: KeyF1,
	12: KeyF2,
	13: KeyF3,
	14: KeyF4,
	15: KeyF5,
	17: KeyF6,
	18: KeyF7,
	19: KeyF8,
	20: KeyF9,
	21: KeyF10,
	23: KeyF11,
	24: KeyF12,
}

// ss3Keys maps SS3 final bytes to keys.
var ss3Keys = map[byte]Key{
	'P': KeyF1,
	'Q': KeyF2,
	'R': KeyF3,
	'S': KeyF4,
	'A': KeyUp,
	'B': KeyDown,
	'C': KeyRight,
	'D': KeyLeft,
	'H': KeyHome,
	'F': KeyEnd,
}

// decodeCSI parses an ESC [ sequence, returning the key, modifier, and the
// number of bytes consumed. n == 0 means the sequence was malformed or
// truncated.
func decodeCSI(data []byte) (Key, Modifier, int) {
	if len(data) < 3 || data[0] != 0x1b || data[1] != '[' {
		return KeyNone, ModNone, 0
	}

	var params []int
	cur, hasCur := 0, false

	for i := 2; i < len(data); i++ {
		b := data[i]
		switch {
		case b >= '0' && b <= '9':
			cur = cur*10 + int(b-'0')
			hasCur = true

		case b == ';':
			params = append(params, cur)
			cur, hasCur = 0, false

		case b >= 0x40 && b <= 0x7e:
			if hasCur {
				params = append(params, cur)
			}
			key, mod := csiKey(params, b)
			return key, mod, i + 1

		default:
			return KeyNone, ModNone, 0
		}
	}
	return KeyNone, ModNone, 0
}

func csiKey(params []int, final byte) (Key, Modifier) {
	// xterm encodes modifiers as a second parameter.
	mod := ModNone
	if len(params) >= 2 {
		mod = decodeModifier(params[1])
	}

	if final == '~' {
		if len(params) == 0 {
			return KeyNone, ModNone
		}
		if key, ok := csiTildeKeys[params[0]]; ok {
			return key, mod
		}
		return KeyNone, ModNone
	}

	if key, ok := csiFinalKeys[final]; ok {
		return key, mod
	}
	return KeyNone, ModNone
}

// decodeModifier decodes the xterm modifier parameter: 1 plus a bitfield of
// shift (1), alt (2) and ctrl (4).
func decodeModifier(param int) Modifier {
	if param <= 1 {
		return ModNone
	}
	flags := param - 1
	var mod Modifier
	if flags&1 != 0 {
		mod |= ModShift
	}
	if flags&2 != 0 {
		mod |= ModAlt
	}
	if flags&4 != 0 {
		mod |= ModCtrl
	}
	return mod
}

// decodeMouseSGR parses an SGR mouse report: ESC [ < button ; x ; y, ended
// by 'M' (press) or 'm' (release). Coordinates arrive 1-indexed.
func decodeMouseSGR(data []byte) (MouseEvent, int) {
	if len(data) < 9 || data[0] != 0x1b || data[1] != '[' || data[2] != '<' {
		return MouseEvent{}, 0
	}

	var fields [3]int
	stage := 0

	for i := 3; i < len(data); i++ {
		b := data[i]
		switch {
		case b >= '0' && b <= '9':
			fields[stage] = fields[stage]*10 + int(b-'0')

		case b == ';':
			stage++
			if stage > 2 {
				return MouseEvent{}, 0
			}

		case b == 'M' || b == 'm':
			if stage != 2 {
				return MouseEvent{}, 0
			}
			return sgrMouseEvent(fields[0], fields[1]-1, fields[2]-1, b == 'M'), i + 1

		default:
			return MouseEvent{}, 0
		}
	}
	return MouseEvent{}, 0
}

// sgrMouseEvent decodes the SGR button field: bits 0-1 button, 2 shift,
// 3 alt, 4 ctrl, 5 motion, 6 wheel.
func sgrMouseEvent(button, x, y int, press bool) MouseEvent {
	ev := MouseEvent{X: x, Y: y}

	if button&4 != 0 {
		ev.Mod |= ModShift
	}
	if button&8 != 0 {
		ev.Mod |= ModAlt
	}
	if button&16 != 0 {
		ev.Mod |= ModCtrl
	}

	if button&64 != 0 {
		if button&1 != 0 {
			ev.Button = MouseWheelDown
		} else {
			ev.Button = MouseWheelUp
		}
		ev.Action = MousePress
		return ev
	}

	switch button & 3 {
	case 0:
		ev.Button = MouseLeft
	case 1:
		ev.Button = MouseMiddle
	case 2:
		ev.Button = MouseRight
	case 3:
		ev.Button = MouseNone
	}

	switch {
	case button&32 != 0:
		ev.Action = MouseDrag
	case press:
		ev.Action = MousePress
	default:
		ev.Action = MouseRelease
	}
	return ev
}

// incompleteUTF8Tail returns any incomplete UTF-8 sequence at the end of
// data, so a multi-byte rune split across reads is not mangled.
func incompleteUTF8Tail(data []byte) []byte {
	for i := 1; i <= 3 && i <= len(data); i++ {
		b := data[len(data)-i]

		if b >= 0xc0 {
			var want int
			switch {
			case b < 0xe0:
				want = 2
			case b < 0xf0:
				want = 3
			default:
				want = 4
			}
			if i < want {
				return data[len(data)-i:]
			}
			return nil
		}

		if b < 0x80 {
			return nil
		}
		// Continuation byte, keep scanning for the lead.
	}
	return nil
}
