package core

// basisAxisThreshold is the component magnitude under which an axis can serve as the helper vector
const basisAxisThreshold = 0.6

// Basis is an orthonormal frame whose W axis is a surface normal
type Basis struct {
	U, V, W Vec3
}

// NewBasis builds a right-handed frame around normal.
// The helper axis is the first of X, Y, Z whose normal component lies strictly
// inside (-0.6, 0.6), falling back to X. The check order changes the resulting
// frame for axis-aligned normals and must stay X, Y, Z.
func NewBasis(normal Vec3) Basis {
	var helper Vec3
	switch {
	case normal.X < basisAxisThreshold && normal.X > -basisAxisThreshold:
		helper = NewVec3(1, 0, 0)
	case normal.Y < basisAxisThreshold && normal.Y > -basisAxisThreshold:
		helper = NewVec3(0, 1, 0)
	case normal.Z < basisAxisThreshold && normal.Z > -basisAxisThreshold:
		helper = NewVec3(0, 0, 1)
	default:
		helper = NewVec3(1, 0, 0)
	}

	u := helper.Cross(normal).Normalize()
	v := normal.Cross(u).Normalize()

	return Basis{U: u, V: v, W: normal}
}

// ToWorld transforms a direction expressed in the local frame into world space
func (b Basis) ToWorld(local Vec3) Vec3 {
	return Vec3{
		X: local.X*b.U.X + local.Y*b.V.X + local.Z*b.W.X,
		Y: local.X*b.U.Y + local.Y*b.V.Y + local.Z*b.W.Y,
		Z: local.X*b.U.Z + local.Y*b.V.Z + local.Z*b.W.Z,
	}
}
