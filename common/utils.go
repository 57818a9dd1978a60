package common

import "github.com/go-gl/mathgl/mgl32"

type Vec2 = mgl32.Vec2
type Vec3 = mgl32.Vec3

// Transform2D is an affine 2D transform stored as a homogeneous 3x3 matrix.
// Column 0 and 1 hold the x and y axes, column 2 holds the origin.
type Transform2D = mgl32.Mat3

type IT interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}
type IIndex interface {
	~int | ~int8 | ~int16 | ~int32 | ~uint | ~uint8 | ~uint16 | ~uint32
}

func GetVert2[T IT, T1 IIndex](verts []T, index T1) []T {
	return verts[index*2 : index*2+2]
}

// PairsToVec2 turns a flat x,y,x,y... slice into points. A trailing odd value is ignored.
func PairsToVec2[T float32 | float64](values []T) []Vec2 {
	res := make([]Vec2, len(values)/2)
	for i := range res {
		v := GetVert2(values, i)
		res[i] = Vec2{float32(v[0]), float32(v[1])}
	}
	return res
}

// Vec2ToPairs flattens points into x,y,x,y...
func Vec2ToPairs(points []Vec2) []float32 {
	res := make([]float32, 0, len(points)*2)
	for _, p := range points {
		res = append(res, p[0], p[1])
	}
	return res
}

func SliceTToSlice[T1, T2 IT](v1 []T1) (v2 []T2) {
	v2 = make([]T2, 0, len(v1))
	for _, v := range v1 {
		v2 = append(v2, T2(v))
	}
	return v2
}

// Identity2D returns the identity transform.
func Identity2D() Transform2D {
	return mgl32.Ident3()
}

// NewTransform2D builds a transform rotating by rot radians then translating by pos.
func NewTransform2D(rot float32, pos Vec2) Transform2D {
	return mgl32.Translate2D(pos[0], pos[1]).Mul3(mgl32.HomogRotate2D(rot))
}

// Xform applies t to the point p.
func Xform(t Transform2D, p Vec2) Vec2 {
	return t.Mul3x1(p.Vec3(1)).Vec2()
}
