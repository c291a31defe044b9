package vnencoding

// TCVN3 packs the Vietnamese repertoire into a single-byte table:
// lowercase in 0xB5-0xFC, uppercase in 0x80-0xAB plus the stroked d pair.
var tcvn3 = map[rune]byte{
	'à': 0xB5, 'á': 0xB8, 'ả': 0xB6, 'ã': 0xB7, 'ạ': 0xB9,
	'ă': 0xBE, 'ằ': 0xBF, 'ắ': 0xC1, 'ẳ': 0xC0, 'ẵ': 0xC2, 'ặ': 0xC3,
	'â': 0xC4, 'ầ': 0xC5, 'ấ': 0xC7, 'ẩ': 0xC6, 'ẫ': 0xC8, 'ậ': 0xC9,
	'è': 0xCC, 'é': 0xCE, 'ẻ': 0xCD, 'ẽ': 0xCF, 'ẹ': 0xD0,
	'ê': 0xD1, 'ề': 0xD2, 'ế': 0xD4, 'ể': 0xD3, 'ễ': 0xD5, 'ệ': 0xD6,
	'ì': 0xD7, 'í': 0xD9, 'ỉ': 0xD8, 'ĩ': 0xDA, 'ị': 0xDB,
	'ò': 0xDC, 'ó': 0xDE, 'ỏ': 0xDD, 'õ': 0xDF, 'ọ': 0xE0,
	'ô': 0xE1, 'ồ': 0xE2, 'ố': 0xE4, 'ổ': 0xE3, 'ỗ': 0xE5, 'ộ': 0xE6,
	'ơ': 0xE7, 'ờ': 0xE8, 'ớ': 0xEA, 'ở': 0xE9, 'ỡ': 0xEB, 'ợ': 0xEC,
	'ù': 0xED, 'ú': 0xEF, 'ủ': 0xEE, 'ũ': 0xF0, 'ụ': 0xF1,
	'ư': 0xF2, 'ừ': 0xF3, 'ứ': 0xF5, 'ử': 0xF4, 'ữ': 0xF6, 'ự': 0xF7,
	'ỳ': 0xF8, 'ý': 0xFA, 'ỷ': 0xF9, 'ỹ': 0xFB, 'ỵ': 0xFC,
	'đ': 0xAE,

	'À': 0x80, 'Á': 0x81, 'Ả': 0x82, 'Ã': 0x83, 'Ạ': 0x84,
	'Ă': 0x85, 'Ằ': 0x86, 'Ắ': 0x87, 'Ẳ': 0x88, 'Ẵ': 0x89, 'Ặ': 0x8A,
	'Â': 0x8B, 'Ầ': 0x8C, 'Ấ': 0x8D, 'Ẩ': 0x8E, 'Ẫ': 0x8F, 'Ậ': 0x90,
	'È': 0x91, 'É': 0x92, 'Ẻ': 0x93, 'Ẽ': 0x94, 'Ẹ': 0x95,
	'Ê': 0x96, 'Ề': 0x97, 'Ế': 0x98, 'Ể': 0x99, 'Ễ': 0x9A, 'Ệ': 0x9B,
	'Ì': 0x9C, 'Í': 0x9D, 'Ỉ': 0x9E, 'Ĩ': 0x9F, 'Ị': 0xA0,
	'Ò': 0xA1, 'Ó': 0xA2, 'Ỏ': 0xA3, 'Õ': 0xA4, 'Ọ': 0xA5,
	'Ô': 0xA6, 'Ồ': 0xA7, 'Ố': 0xA8, 'Ổ': 0xA9, 'Ỗ': 0xAA, 'Ộ': 0xAB,
	'Đ': 0xAC,
}

// CP1258 covers only the precomposed forms Windows-1258 actually has;
// the rest of the repertoire needs combining sequences and falls back to
// UTF-8 untouched.
var cp1258 = map[rune]byte{
	'À': 0xC0, 'Á': 0xC1, 'Â': 0xC2, 'Ã': 0xC3,
	'È': 0xC8, 'É': 0xC9, 'Ê': 0xCA,
	'Ì': 0xCC, 'Í': 0xCD,
	'Ò': 0xD2, 'Ó': 0xD3, 'Ô': 0xD4, 'Õ': 0xD5,
	'Ù': 0xD9, 'Ú': 0xDA, 'Ý': 0xDD,
	'à': 0xE0, 'á': 0xE1, 'â': 0xE2, 'ã': 0xE3,
	'è': 0xE8, 'é': 0xE9, 'ê': 0xEA,
	'ì': 0xEC, 'í': 0xED,
	'ò': 0xF2, 'ó': 0xF3, 'ô': 0xF4, 'õ': 0xF5,
	'ù': 0xF9, 'ú': 0xFA, 'ý': 0xFD,
	'Đ': 0xD0, 'đ': 0xF0,
	'Ơ': 0xD6, 'ơ': 0xF6,
	'Ư': 0xDC, 'ư': 0xFC,
}
