package zap

import "strings"

// controlCharReplacer escapes characters that can forge extra entries in
// console-encoded output (CWE-117). Field values are left to the encoder.
var controlCharReplacer = strings.NewReplacer(
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

func sanitizeString(s string) string {
	return controlCharReplacer.Replace(s)
}
