package syntax

// reMetachar is a table of bytes that have a special meaning
// in a pattern and need to be escaped to be matched literally.
var reMetachar = [256]bool{
	'\\': true,
	'*':  true,
	'+':  true,
	'.':  true,
	'(':  true,
	')':  true,
}

func isMetachar(ch byte) bool {
	return reMetachar[ch]
}

func isPrint(ch byte) bool {
	return ch >= ' ' && ch <= '~'
}
