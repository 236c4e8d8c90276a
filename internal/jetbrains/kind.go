package jetbrains

//go:generate go tool stringer -type=KindEnum -linecomment -output=kind_string.go

// KindEnum is a recognized value of the configuration "type" attribute.
type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as the unrecognized kind

	KindPython // PythonConfigurationType
	KindTests  // tests
)

// ParseKind returns the kind whose type attribute equals s.
func ParseKind(s string) (KindEnum, bool) {
	for k := KindPython; k <= KindTests; k++ {
		if k.String() == s {
			return k, true
		}
	}

	return 0, false
}
