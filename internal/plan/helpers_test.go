package plan

func ptr(s string) *string {
	return &s
}

func field(name, typ string) RawField {
	return RawField{Name: name, Type: typ}
}
