package catalog

// VersionLabel maps a player save's version stamp to the human-readable
// game release string a CLI summary or editor status bar would show.
// Ranges are inclusive low, exclusive of the next entry's low bound.
func VersionLabel(version int32) string {
	switch {
	case version < 0:
		return "Unknown"
	case version == 0:
		return "1.0"
	case version == 1:
		return "1.0 (or newer)"
	case version == 2:
		return "1.0.1"
	case version == 3:
		return "1.0.2"
	case version == 4:
		return "1.0.3"
	case version >= 5 && version <= 8:
		return "1.0.3 (or newer)"
	case version == 9:
		return "1.0.4"
	case version >= 10 && version <= 11:
		return "1.0.4 (or newer)"
	case version == 12:
		return "1.0.5"
	case version >= 13 && version <= 19:
		return "1.0.5 (or newer)"
	case version == 20:
		return "1.0.6"
	case version == 21:
		return "1.0.6 (or newer)"
	case version == 22:
		return "1.0.6.1"
	case version >= 23 && version <= 35:
		return "1.0.6.1 (or newer)"
	case version == 36:
		return "1.1"
	case version == 37:
		return "1.1.1"
	case version == 38:
		return "1.1.1 (or newer)"
	case version == 39:
		return "1.1.2"
	case version >= 40 && version <= 66:
		return "1.1.2 (or newer)"
	case version == 67:
		return "1.2"
	case version == 68:
		return "1.2.0.1"
	case version == 69:
		return "1.2.0.2"
	case version == 70:
		return "1.2.0.3"
	case version == 71:
		return "1.2.0.3.1"
	case version == 72:
		return "1.2.1/1.2.1.1"
	case version == 73:
		return "1.2.1.2"
	case version >= 74 && version <= 76:
		return "1.2.1.2 (or newer)"
	case version == 77:
		return "1.2.2"
	case version >= 78 && version <= 92:
		return "1.2.2 (or newer)"
	case version == 93:
		return "1.2.3"
	case version == 94:
		return "1.2.3.1"
	case version >= 95 && version <= 100:
		return "1.2.3.1 (or newer)"
	case version == 101:
		return "1.2.4"
	case version == 102:
		return "1.2.4.1"
	case version >= 103 && version <= 145:
		return "1.2.4.1 (or newer)"
	case version == 146:
		return "1.3.0.1"
	case version == 147:
		return "1.3.0.2"
	case version == 148:
		return "1.3.0.2 (or newer)"
	case version == 149:
		return "1.3.0.3"
	case version == 150:
		return "1.3.0.3 (or newer)"
	case version == 151:
		return "1.3.0.4"
	case version == 152:
		return "1.3.0.4 (or newer)"
	case version == 153:
		return "1.3.0.5"
	case version == 154:
		return "1.3.0.6"
	case version == 155:
		return "1.3.0.7"
	case version == 156:
		return "1.3.0.8"
	case version >= 157 && version <= 167:
		return "1.3.0.8 (or newer)"
	case version == 168:
		return "1.3.1"
	case version == 169:
		return "1.3.1.1"
	case version >= 170 && version <= 171:
		return "1.3.1.1 (or newer)"
	case version == 172:
		return "1.3.2"
	case version == 173:
		return "1.3.2.1"
	case version == 174:
		return "1.3.2.1 (or newer)"
	case version == 175:
		return "1.3.3"
	case version == 176:
		return "1.3.3.1/1.3.3.2"
	case version == 177:
		return "1.3.3.3"
	case version >= 178 && version <= 183:
		return "1.3.3.3 (or newer)"
	case version == 184:
		return "1.3.4"
	case version == 185:
		return "1.3.4.1"
	case version == 186:
		return "1.3.4.2"
	case version == 187:
		return "1.3.4.3"
	case version == 188:
		return "1.3.4.4"
	case version >= 189 && version <= 190:
		return "1.3.4.4 (or newer)"
	case version == 191:
		return "1.3.5"
	case version == 192:
		return "1.3.5.1"
	case version == 193:
		return "1.3.5.2"
	case version == 194:
		return "1.3.5.3"
	case version >= 195 && version <= 224:
		return "1.3.5.3 (or newer)"
	case version == 225:
		return "1.4.0.1"
	case version == 226:
		return "1.4.0.2"
	case version == 227:
		return "1.4.0.3"
	case version == 228:
		return "1.4.0.4"
	case version == 229:
		return "1.4.0.4 (or newer)"
	case version == 230:
		return "1.4.0.5"
	case version == 231:
		return "1.4.0.5 (or newer)"
	case version == 232:
		return "1.4.1"
	case version == 233:
		return "1.4.1.1"
	case version == 234:
		return "1.4.1.2"
	case version == 235:
		return "1.4.2"
	case version == 236:
		return "1.4.2.1"
	case version == 237:
		return "1.4.2.2"
	case version == 238:
		return "1.4.2.3"
	case version >= 239 && version <= 241:
		return "1.4.2.3 (or newer)"
	case version == 242:
		return "1.4.3"
	case version == 243:
		return "1.4.3.1"
	case version == 244:
		return "1.4.3.2"
	case version == 245:
		return "1.4.3.3"
	case version == 246:
		return "1.4.3.4"
	case version == 247:
		return "1.4.3.5"
	case version == 248:
		return "1.4.3.6"
	case version >= 249 && version <= 268:
		return "1.4.3.6 (or newer)"
	case version == 269:
		return "1.4.4"
	case version == 270:
		return "1.4.4.1"
	case version == 271:
		return "1.4.4.2"
	case version == 272:
		return "1.4.4.3"
	case version == 273:
		return "1.4.4.4"
	case version == 274:
		return "1.4.4.5"
	case version == 275:
		return "1.4.4.6"
	case version == 276:
		return "1.4.4.7"
	case version == 277:
		return "1.4.4.8"
	case version == 278:
		return "1.4.4.8.1"
	case version == 279:
		return "1.4.4.9"
	default:
		return "1.4.4.9 (or newer)"
	}
}
