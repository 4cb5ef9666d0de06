package tableview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderText(t *testing.T) {
	state := NewState()
	page := Apply(sample(), &state)

	out := RenderText(page)
	assert.Contains(t, out, "TANGGAL")
	assert.Contains(t, out, "Kopi Hitam")
	assert.Contains(t, out, "Rp 15000")
	assert.Contains(t, out, "Halaman 1 / 1 (5 transaksi)")
}

func TestRenderTextEmpty(t *testing.T) {
	state := NewState()
	page := Apply(nil, &state)

	out := RenderText(page)
	assert.Contains(t, out, "Tidak ada data")
	assert.Contains(t, out, "Halaman 1 / 1 (0 transaksi)")
}
