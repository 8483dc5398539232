package render

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/fogleman/gg"
	"github.com/kegliz/aigrw/aig"
	"github.com/kegliz/aigrw/depth"
)

// GGPNG renders an AIG's level diagram with the gg pure-Go vector
// library.
type GGPNG struct{ Cell float64 }

// NewRenderer returns a renderer using cellPx-sized grid cells.
func NewRenderer(cellPx int) GGPNG { return GGPNG{Cell: float64(cellPx)} }

// Render draws one box per live AND and one circle per primary input,
// arranged by level (column) and position within that level (row), with
// an edge per fanin. Critical-path nodes and the edges between them are
// drawn in red; other nodes in black and other edges in grey. A small
// hollow circle marks a complemented fanin.
func (r GGPNG) Render(a *aig.AIG, d *depth.View) (image.Image, error) {
	byLevel := make(map[uint32][]aig.NodeID)
	maxLevel := d.Depth()

	a.ForeachGate(func(n aig.NodeID) {
		l := d.Level(n)
		byLevel[l] = append(byLevel[l], n)
		if l > maxLevel {
			maxLevel = l
		}
	})
	for _, id := range a.PIs() {
		byLevel[0] = append(byLevel[0], id)
	}

	maxRows := 1
	for _, ids := range byLevel {
		if len(ids) > maxRows {
			maxRows = len(ids)
		}
	}

	w := int(float64(maxLevel+1)*r.Cell) + int(r.Cell)
	h := int(float64(maxRows)*r.Cell) + int(r.Cell)

	dc := gg.NewContext(w, h)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	pos := make(map[aig.NodeID][2]float64)
	for level := uint32(0); level <= maxLevel; level++ {
		ids := byLevel[level]
		for row, id := range ids {
			x := r.x(int(level))
			y := r.y(row)
			pos[id] = [2]float64{x, y}
		}
	}

	// Edges first, so node boxes sit on top.
	a.ForeachGate(func(n aig.NodeID) {
		np := pos[n]
		for i := 0; i < 2; i++ {
			var f aig.Signal
			if i == 0 {
				f = a.Fanin0(n)
			} else {
				f = a.Fanin1(n)
			}
			fp, ok := pos[f.Node()]
			if !ok {
				continue
			}
			if d.IsOnCriticalPath(n) && d.IsOnCriticalPath(f.Node()) {
				dc.SetRGB(0.8, 0.1, 0.1)
			} else {
				dc.SetRGB(0.6, 0.6, 0.6)
			}
			dc.DrawLine(fp[0], fp[1], np[0], np[1])
			dc.Stroke()
			if f.Complemented() {
				midX, midY := (fp[0]+np[0])/2, (fp[1]+np[1])/2
				dc.DrawCircle(midX, midY, r.Cell*0.06)
				dc.SetRGB(1, 1, 1)
				dc.FillPreserve()
				dc.SetRGB(0, 0, 0)
				dc.Stroke()
			}
		}
	})

	for id, p := range pos {
		size := r.Cell * 0.6
		if d.IsOnCriticalPath(id) {
			dc.SetRGB(0.8, 0.1, 0.1)
		} else {
			dc.SetRGB(0, 0, 0)
		}
		if a.IsPI(id) {
			dc.DrawCircle(p[0], p[1], size/2)
		} else {
			dc.DrawRectangle(p[0]-size/2, p[1]-size/2, size, size)
		}
		dc.SetRGB(1, 1, 1)
		dc.FillPreserve()
		if d.IsOnCriticalPath(id) {
			dc.SetRGB(0.8, 0.1, 0.1)
		} else {
			dc.SetRGB(0, 0, 0)
		}
		dc.Stroke()
		dc.DrawStringAnchored(fmt.Sprintf("%d", id), p[0], p[1], 0.5, 0.5)
	}

	return dc.Image(), nil
}

// Save renders and writes the result as a PNG file at path.
func (r GGPNG) Save(path string, a *aig.AIG, d *depth.View) error {
	img, err := r.Render(a, d)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

func (r GGPNG) x(level int) float64 { return float64(level)*r.Cell + r.Cell/2 }
func (r GGPNG) y(row int) float64   { return float64(row)*r.Cell + r.Cell/2 }
