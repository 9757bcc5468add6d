// Package wire holds the serializable payload types shared between the
// server and its clients. It is a leaf package: nothing here may import
// other server packages, so every layer can depend on the contract.
package wire

// Point carries a 2D coordinate or vector across the wire. Field meaning
// (position vs. velocity) is decided by the message embedding it.
type Point struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
}
