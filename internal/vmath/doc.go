// Package vmath is a small float32 vector and 4x4 matrix kernel for the demo
// renderers.
//
// Matrices are column-major (Mat4[col][row]) so they can be uploaded as
// shader uniforms without transposing. Products compose right to left: in
// Mul(Translate(t), Scale(s)) a vertex is scaled first and translated second.
//
// Builders never panic. Directional inputs with no direction fall back to a
// defined value (Normalize returns the zero vector, Rotate the identity,
// LookAt a pure translation); Perspective rejects a parameter set it cannot
// project with an error wrapping ErrDegenerateInput.
//
// Yaw and pitch accumulated by callers drift slightly over long runs; the
// kernel does not attempt to correct that.
package vmath
