package badtag

type Broken struct {
	A int `rowmap:"column=a"`
}
