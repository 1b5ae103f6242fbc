// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import "cogentcore.org/xmastree/math32"

// Camera is a fixed perspective camera looking down the -Z axis
// at the middle of the tree.
type Camera struct {

	// position of the scene relative to the eye: the view translation
	Offset math32.Vector3

	// vertical field of view in degrees
	FOV float32 `default:"45"`

	// near plane z coordinate
	Near float32 `default:".1"`

	// far plane z coordinate
	Far float32 `default:"100"`
}

// Defaults sets the default camera for a tree of the given height.
func (cm *Camera) Defaults(height float32) {
	cm.Offset = math32.Vec3(0, -height/2, -6)
	cm.FOV = 45
	cm.Near = .1
	cm.Far = 100
}

// View returns the view matrix of the camera.
func (cm *Camera) View() *math32.Matrix4 {
	vm := &math32.Matrix4{}
	vm.SetTranslation(cm.Offset.X, cm.Offset.Y, cm.Offset.Z)
	return vm
}

// Projection returns the perspective projection matrix of the camera
// for the given aspect ratio (width / height).
func (cm *Camera) Projection(aspect float32) *math32.Matrix4 {
	pm := &math32.Matrix4{}
	pm.SetPerspective(cm.FOV, aspect, cm.Near, cm.Far)
	return pm
}

// CamView holds the three matrices of one draw call.
type CamView struct {
	Model      math32.Matrix4
	View       math32.Matrix4
	Projection math32.Matrix4
}

// CamView returns the matrices of the given draw for the given aspect ratio.
func (cm *Camera) CamView(d *Draw, aspect float32) CamView {
	return CamView{Model: *d.Model(), View: *cm.View(), Projection: *cm.Projection(aspect)}
}

// MVP returns the combined projection * view * model matrix.
func (cv *CamView) MVP() *math32.Matrix4 {
	return cv.Projection.Mul(&cv.View).Mul(&cv.Model)
}
