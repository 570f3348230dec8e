package demo

import (
	"go.uber.org/zap"

	"github.com/taigrr/scenery/pkg/models"
	"github.com/taigrr/scenery/pkg/render"
)

var (
	checkerLight = render.RGB(192, 192, 192)
	checkerDark  = render.RGB(64, 64, 64)

	skyZenith  = render.RGB(40, 70, 140)
	skyHorizon = render.RGB(200, 190, 170)
	skyGround  = render.RGB(60, 50, 40)
)

// loadChecker loads the checker image at path, or a 2x2 checker when path
// is empty or unreadable. Either way it samples nearest.
func loadChecker(path string, log *zap.Logger) *render.Texture {
	tex := loadTexture(path, "checker", log)
	if tex == nil {
		tex = render.NewCheckerTexture(2, 2, 1, checkerLight, checkerDark)
	}
	tex.FilterMode = render.FilterNearest
	return tex
}

// loadPanorama loads the equirectangular image at path, or a gradient sky.
// Either way it samples bilinear.
func loadPanorama(path string, log *zap.Logger) *render.Texture {
	tex := loadTexture(path, "panorama", log)
	if tex == nil {
		tex = render.NewSkyTexture(256, 128, skyZenith, skyHorizon, skyGround)
	}
	tex.FilterMode = render.FilterBilinear
	return tex
}

func loadTexture(path, what string, log *zap.Logger) *render.Texture {
	if path == "" {
		return nil
	}
	tex, err := render.LoadTexture(path)
	if err != nil {
		log.Warn("using procedural "+what, zap.String("path", path), zap.Error(err))
		return nil
	}
	log.Debug("loaded "+what, zap.String("path", path), zap.Int("width", tex.Width), zap.Int("height", tex.Height))
	return tex
}

// loadModel loads a glTF or GLB model and its first embedded texture. The
// texture is nil when the model has none.
func loadModel(path string, log *zap.Logger) (*models.Mesh, *render.Texture, error) {
	mesh, img, err := models.LoadGLBWithTexture(path)
	if err != nil {
		return nil, nil, err
	}
	var tex *render.Texture
	if img != nil {
		tex = render.TextureFromImage(img)
		tex.FilterMode = render.FilterBilinear
	}
	log.Info("loaded model",
		zap.String("path", path),
		zap.Int("vertices", mesh.VertexCount()),
		zap.Int("triangles", mesh.TriangleCount()),
		zap.Bool("textured", tex != nil))
	return mesh, tex, nil
}
