// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatrix4(t *testing.T) {
	v := Vec3(1, 2, 3)
	assert.Equal(t, v, Identity4().MulVector3AsPoint(v))

	tr := &Matrix4{}
	tr.SetTranslation(1, -1, 2)
	assert.Equal(t, Vec3(2, 1, 5), tr.MulVector3AsPoint(v))

	rot := &Matrix4{}
	rot.SetRotationY(DegToRad(90))
	// +X rotates to -Z around Y
	tolAssertEqualVector(t, Vec3(0, 0, -1), rot.MulVector3AsPoint(Vec3(1, 0, 0)))
	tolAssertEqualVector(t, Vec3(1, 0, 0), rot.MulVector3AsPoint(Vec3(0, 0, 1)))
	tolAssertEqualVector(t, Vec3(0, 5, 0), rot.MulVector3AsPoint(Vec3(0, 5, 0)))

	// multiplication order is *reverse* of "logical" order:
	// translate first, then rotate.
	m := rot.Mul(tr)
	tolAssertEqualVector(t, rot.MulVector3AsPoint(tr.MulVector3AsPoint(v)), m.MulVector3AsPoint(v), 1.0e-5)
}

func TestMatrix4Perspective(t *testing.T) {
	pm := &Matrix4{}
	pm.SetPerspective(90, 1, 1, 10)

	// point on the near plane at the frustum edge maps to NDC (1, 1, -1)
	tolAssertEqualVector(t, Vec3(1, 1, -1), Vec3(1, 1, -1).MulMatrix4AsPoint(pm), 1.0e-5)
	// far plane center maps to z = 1
	tolAssertEqualVector(t, Vec3(0, 0, 1), Vec3(0, 0, -10).MulMatrix4AsPoint(pm), 1.0e-5)
}
