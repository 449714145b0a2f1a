package vector3

import (
	"io"
	"strconv"
)

func (v V) appendText(b []byte) []byte {
	b = strconv.AppendFloat(b, v.X, 'g', -1, 64)
	b = append(b, ' ')
	b = strconv.AppendFloat(b, v.Y, 'g', -1, 64)
	b = append(b, ' ')
	return strconv.AppendFloat(b, v.Z, 'g', -1, 64)
}

// String formats the vector as "X Y Z"
func (v V) String() string {
	return string(v.appendText(make([]byte, 0, 48)))
}

// WriteTo writes the vector to w in the same form as String
func (v V) WriteTo(w io.Writer) (n int64, err error) {
	var buf [80]byte
	var c int
	c, err = w.Write(v.appendText(buf[:0]))
	n = int64(c)
	return
}
