package navpoly

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gorustyt/gonavmesh2d/common"
	"github.com/gorustyt/gonavmesh2d/common/message"
	"github.com/gorustyt/gonavmesh2d/common/rw"
	"github.com/hjson/hjson-go/v4"
	"github.com/vmihailenco/msgpack/v5"
	"google.golang.org/protobuf/encoding/protowire"
)

const (
	NAVPOLY_MAGIC   = 'N'<<24 | 'P'<<16 | '2'<<8 | 'D'
	NAVPOLY_VERSION = 1
)

type Format int

const (
	FormatBin Format = iota
	FormatProto
	FormatMsgpack
	FormatAsset
)

func (f Format) String() string {
	switch f {
	case FormatBin:
		return "bin"
	case FormatProto:
		return "proto"
	case FormatMsgpack:
		return "msgpack"
	case FormatAsset:
		return "asset"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// FormatFromPath picks a format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".bin":
		return FormatBin, nil
	case ".pb":
		return FormatProto, nil
	case ".msgpack":
		return FormatMsgpack, nil
	case ".hjson", ".json":
		return FormatAsset, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
}

// Data is a flat snapshot of a navigation polygon. Points are x,y pairs.
type Data struct {
	Vertices []float32   `json:"vertices" msgpack:"vertices"`
	Polygons [][]int32   `json:"polygons" msgpack:"polygons"`
	Outlines [][]float32 `json:"outlines" msgpack:"outlines"`
}

func (np *NavigationPolygon) ToData() *Data {
	d := &Data{Vertices: common.Vec2ToPairs(np.vertices)}
	for _, p := range np.polygons {
		d.Polygons = append(d.Polygons, common.SliceTToSlice[int, int32](p.Indices))
	}
	for _, ol := range np.outlines {
		d.Outlines = append(d.Outlines, common.Vec2ToPairs(ol))
	}
	return d
}

// FromData builds a navigation polygon and checks every polygon against
// the vertex list.
func FromData(d *Data) (*NavigationPolygon, error) {
	if len(d.Vertices)%2 != 0 {
		return nil, fmt.Errorf("%w: odd vertex component count %d", ErrCorrupt, len(d.Vertices))
	}
	np := NewNavigationPolygon()
	np.vertices = common.PairsToVec2(d.Vertices)
	for i, p := range d.Polygons {
		if len(p) < 3 {
			return nil, fmt.Errorf("%w: polygon %d has %d indices", ErrCorrupt, i, len(p))
		}
		for _, idx := range p {
			if idx < 0 || int(idx) >= len(np.vertices) {
				return nil, fmt.Errorf("%w: polygon %d index %d out of range", ErrCorrupt, i, idx)
			}
		}
		np.polygons = append(np.polygons, Polygon{Indices: common.SliceTToSlice[int32, int](p)})
	}
	for i, ol := range d.Outlines {
		if len(ol)%2 != 0 {
			return nil, fmt.Errorf("%w: outline %d has odd component count", ErrCorrupt, i)
		}
		np.outlines = append(np.outlines, common.PairsToVec2(ol))
	}
	return np, nil
}

func (np *NavigationPolygon) ToBin() []byte {
	w := rw.NewBinWriter()
	w.WriteUInt32(NAVPOLY_MAGIC)
	w.WriteUInt32(NAVPOLY_VERSION)
	w.WriteInt32(len(np.vertices))
	w.WriteFloat32s(common.Vec2ToPairs(np.vertices))
	w.WriteInt32(len(np.polygons))
	for _, p := range np.polygons {
		w.WriteInt32(len(p.Indices))
		w.WriteInt32s(p.Indices)
	}
	w.WriteInt32(len(np.outlines))
	for _, ol := range np.outlines {
		w.WriteInt32(len(ol))
		w.WriteFloat32s(common.Vec2ToPairs(ol))
	}
	return w.GetWriteBytes()
}

func FromBin(data []byte) (*NavigationPolygon, error) {
	r := rw.NewBinReader(data)
	if r.ReadUInt32() != NAVPOLY_MAGIC {
		if r.Err() != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorrupt, r.Err())
		}
		return nil, ErrWrongMagic
	}
	if v := r.ReadUInt32(); v != NAVPOLY_VERSION {
		if r.Err() != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorrupt, r.Err())
		}
		return nil, fmt.Errorf("%w: %d", ErrWrongVersion, v)
	}

	d := &Data{}
	var err error
	if d.Vertices, err = readFloatPairs(r); err != nil {
		return nil, err
	}
	n, err := readCount(r, 4)
	if err != nil {
		return nil, err
	}
	d.Polygons = make([][]int32, n)
	for i := range d.Polygons {
		cnt, err := readCount(r, 4)
		if err != nil {
			return nil, err
		}
		d.Polygons[i] = make([]int32, cnt)
		r.ReadInt32s(d.Polygons[i])
	}
	if n, err = readCount(r, 4); err != nil {
		return nil, err
	}
	d.Outlines = make([][]float32, n)
	for i := range d.Outlines {
		if d.Outlines[i], err = readFloatPairs(r); err != nil {
			return nil, err
		}
	}
	if r.Err() != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, r.Err())
	}
	return FromData(d)
}

// readCount reads an element count and rejects counts that cannot fit in
// the remaining bytes.
func readCount(r *rw.ReaderWriter, elemSize int) (int, error) {
	n := r.ReadInt32()
	if r.Err() != nil {
		return 0, fmt.Errorf("%w: %v", ErrCorrupt, r.Err())
	}
	if n < 0 || int(n)*elemSize > r.Size() {
		return 0, fmt.Errorf("%w: count %d exceeds remaining %d bytes", ErrCorrupt, n, r.Size())
	}
	return int(n), nil
}

func readFloatPairs(r *rw.ReaderWriter) ([]float32, error) {
	n, err := readCount(r, 8)
	if err != nil {
		return nil, err
	}
	res := make([]float32, n*2)
	r.ReadFloat32s(res)
	return res, nil
}

const (
	fieldVertices protowire.Number = 1
	fieldPolygon  protowire.Number = 2
	fieldOutline  protowire.Number = 3

	fieldPolygonIndices protowire.Number = 1
	fieldOutlinePoints  protowire.Number = 1
)

// ToProto encodes the polygon as:
//
//	message NavigationPolygon {
//	  repeated float vertices = 1;
//	  message Polygon { repeated int32 indices = 1; }
//	  repeated Polygon polygon = 2;
//	  message Outline { repeated float points = 1; }
//	  repeated Outline outline = 3;
//	}
func (np *NavigationPolygon) ToProto() []byte {
	e := message.NewEncoder()
	e.PackedFloat32(fieldVertices, common.Vec2ToPairs(np.vertices))
	for _, p := range np.polygons {
		e.Message(fieldPolygon, func(sub *message.Encoder) {
			sub.PackedInt32(fieldPolygonIndices, common.SliceTToSlice[int, int32](p.Indices))
		})
	}
	for _, ol := range np.outlines {
		e.Message(fieldOutline, func(sub *message.Encoder) {
			sub.PackedFloat32(fieldOutlinePoints, common.Vec2ToPairs(ol))
		})
	}
	return e.Bytes()
}

func FromProto(data []byte) (*NavigationPolygon, error) {
	d := &Data{}
	err := message.Walk(data, func(f message.Field) error {
		switch f.Num {
		case fieldVertices:
			v, err := f.Float32s()
			if err != nil {
				return err
			}
			d.Vertices = append(d.Vertices, v...)
		case fieldPolygon:
			var indices []int32
			if err := walkSub(f, func(sf message.Field) error {
				if sf.Num != fieldPolygonIndices {
					return nil
				}
				v, err := sf.Int32s()
				indices = append(indices, v...)
				return err
			}); err != nil {
				return err
			}
			d.Polygons = append(d.Polygons, indices)
		case fieldOutline:
			var points []float32
			if err := walkSub(f, func(sf message.Field) error {
				if sf.Num != fieldOutlinePoints {
					return nil
				}
				v, err := sf.Float32s()
				points = append(points, v...)
				return err
			}); err != nil {
				return err
			}
			d.Outlines = append(d.Outlines, points)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return FromData(d)
}

func walkSub(f message.Field, fn func(f message.Field) error) error {
	if f.Type != protowire.BytesType {
		return fmt.Errorf("%w: field %d", message.ErrWireType, f.Num)
	}
	return message.Walk(f.Raw, fn)
}

func (np *NavigationPolygon) ToMsgpack() ([]byte, error) {
	return msgpack.Marshal(np.ToData())
}

func FromMsgpack(data []byte) (*NavigationPolygon, error) {
	d := &Data{}
	if err := msgpack.Unmarshal(data, d); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return FromData(d)
}

// LoadAsset reads a hand written hjson or json asset with the Data layout.
func LoadAsset(data []byte) (*NavigationPolygon, error) {
	data = bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})
	d := &Data{}
	if err := hjson.Unmarshal(data, d); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return FromData(d)
}

// Encode writes np in format. FormatAsset is read only.
func (np *NavigationPolygon) Encode(format Format) ([]byte, error) {
	switch format {
	case FormatBin:
		return np.ToBin(), nil
	case FormatProto:
		return np.ToProto(), nil
	case FormatMsgpack:
		return np.ToMsgpack()
	}
	return nil, fmt.Errorf("%w: cannot encode %v", ErrUnknownFormat, format)
}

func Decode(format Format, data []byte) (*NavigationPolygon, error) {
	switch format {
	case FormatBin:
		return FromBin(data)
	case FormatProto:
		return FromProto(data)
	case FormatMsgpack:
		return FromMsgpack(data)
	case FormatAsset:
		return LoadAsset(data)
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, format)
}
