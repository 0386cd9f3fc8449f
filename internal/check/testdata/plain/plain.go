package plain

type Flags struct {
	A int32
	B bool
}
