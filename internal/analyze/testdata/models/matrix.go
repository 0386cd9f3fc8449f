//go:build go1.21

package models

type Matrix struct {
	Cells map[string]int `rowmap:"from=map[string]int, rename=cells"`
}
