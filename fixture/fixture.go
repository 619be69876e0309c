// Package fixture fingerprints compiled circuit artifacts (R1CS
// matrices, witness assignments, QAP polynomials) for golden-file
// regression testing. The digest carries no cryptographic meaning in
// this repo — it exists purely so a change to the kernel's iteration
// order is caught even when the floating-point values still happen to
// satisfy every constraint within tolerance.
package fixture

import (
	"encoding/binary"
	"encoding/hex"
	"math"

	"golang.org/x/crypto/sha3"
)

// Digest is a 32-byte SHA3-256 fingerprint.
type Digest [32]byte

// String renders the digest as lowercase hex.
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// Matrices hashes the A, B, C coefficient matrices and the witness
// assignment, in that order, row-major.
func Matrices(a, b, c [][]float64, assignment []float64) Digest {
	h := sha3.New256()
	writeMatrix(h, a)
	writeMatrix(h, b)
	writeMatrix(h, c)
	writeRow(h, assignment)
	var d Digest
	copy(d[:], h.Sum(nil))
	return d
}

// Polynomials hashes a QAP's three per-column polynomial vectors plus Z,
// in that order.
func Polynomials(aPolys, bPolys, cPolys [][]float64, z []float64) Digest {
	h := sha3.New256()
	writeMatrix(h, aPolys)
	writeMatrix(h, bPolys)
	writeMatrix(h, cPolys)
	writeRow(h, z)
	var d Digest
	copy(d[:], h.Sum(nil))
	return d
}

type writer interface {
	Write(p []byte) (int, error)
}

func writeMatrix(w writer, m [][]float64) {
	var lenBuf [8]byte
	binary.LittleEndian.PutUint64(lenBuf[:], uint64(len(m)))
	w.Write(lenBuf[:])
	for _, row := range m {
		writeRow(w, row)
	}
}

func writeRow(w writer, row []float64) {
	var lenBuf [8]byte
	binary.LittleEndian.PutUint64(lenBuf[:], uint64(len(row)))
	w.Write(lenBuf[:])
	buf := make([]byte, 8*len(row))
	for i, v := range row {
		binary.LittleEndian.PutUint64(buf[i*8:], math.Float64bits(v))
	}
	w.Write(buf)
}
