package models

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/taigrr/scenery/pkg/math3d"
)

// ErrNoImage is returned when a model carries no decodable image.
var ErrNoImage = errors.New("model has no image")

// NormalMode selects how vertex normals are generated for primitives
// that don't carry them.
type NormalMode int

const (
	NormalsSmooth NormalMode = iota // area-weighted vertex averages
	NormalsFlat                     // one normal per face
	NormalsKeep                     // leave them zero
)

// GLTFLoader flattens glTF and GLB documents into a single Mesh.
type GLTFLoader struct {
	Normals NormalMode
}

// NewGLTFLoader creates a loader that generates smooth normals.
func NewGLTFLoader() *GLTFLoader {
	return &GLTFLoader{Normals: NormalsSmooth}
}

// Model is a flattened glTF document: geometry from every mesh node in
// world space plus the document's encoded images.
type Model struct {
	Mesh *Mesh
	// Images holds encoded image bytes by document image index. Entries
	// that could not be read are nil.
	Images [][]byte
}

// Load opens a .gltf or .glb file. External buffers and images are read
// relative to the file.
func (l *GLTFLoader) Load(path string) (*Model, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}
	model, err := l.Decode(doc, filepath.Base(path))
	if err != nil {
		return nil, err
	}
	model.Images = readImages(doc, filepath.Dir(path))
	return model, nil
}

// Decode flattens an already parsed document. Images are left empty.
func (l *GLTFLoader) Decode(doc *gltf.Document, name string) (*Model, error) {
	mesh := NewMesh(name)
	mesh.Materials = readMaterials(doc)

	err := walkMeshNodes(doc, func(m *gltf.Mesh, world math3d.Mat4) error {
		for i, prim := range m.Primitives {
			if err := appendPrimitive(doc, prim, world, mesh); err != nil {
				return fmt.Errorf("mesh %q primitive %d: %w", m.Name, i, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !hasNormals(mesh) {
		switch l.Normals {
		case NormalsSmooth:
			mesh.CalculateSmoothNormals()
		case NormalsFlat:
			mesh.CalculateNormals()
		}
	}
	mesh.CalculateBounds()
	return &Model{Mesh: mesh}, nil
}

// walkMeshNodes calls fn for every mesh reachable from the default scene
// with the node's world transform. Documents without scenes yield every
// mesh untransformed.
func walkMeshNodes(doc *gltf.Document, fn func(*gltf.Mesh, math3d.Mat4) error) error {
	if len(doc.Scenes) == 0 {
		for _, m := range doc.Meshes {
			if err := fn(m, math3d.Identity()); err != nil {
				return err
			}
		}
		return nil
	}

	sceneIdx := 0
	if doc.Scene != nil {
		sceneIdx = *doc.Scene
	}
	if sceneIdx >= len(doc.Scenes) {
		return fmt.Errorf("default scene %d out of range", sceneIdx)
	}

	var visit func(idx int, parent math3d.Mat4, depth int) error
	visit = func(idx int, parent math3d.Mat4, depth int) error {
		if idx < 0 || idx >= len(doc.Nodes) {
			return fmt.Errorf("node %d out of range", idx)
		}
		if depth > len(doc.Nodes) {
			return fmt.Errorf("node %d: cycle in node graph", idx)
		}
		node := doc.Nodes[idx]
		world := parent.Mul(nodeMatrix(node))
		if node.Mesh != nil && *node.Mesh < len(doc.Meshes) {
			if err := fn(doc.Meshes[*node.Mesh], world); err != nil {
				return err
			}
		}
		for _, child := range node.Children {
			if err := visit(child, world, depth+1); err != nil {
				return err
			}
		}
		return nil
	}

	for _, root := range doc.Scenes[sceneIdx].Nodes {
		if err := visit(root, math3d.Identity(), 0); err != nil {
			return err
		}
	}
	return nil
}

// nodeMatrix returns a node's local transform, from its matrix when set
// and otherwise from translation, rotation and scale.
func nodeMatrix(n *gltf.Node) math3d.Mat4 {
	if m := n.MatrixOrDefault(); m != gltf.DefaultMatrix {
		return math3d.Mat4(m)
	}
	t, r, s := n.Translation, n.RotationOrDefault(), n.ScaleOrDefault()
	return math3d.Translate(math3d.V3(t[0], t[1], t[2])).
		Mul(math3d.Quaternion(r[0], r[1], r[2], r[3])).
		Mul(math3d.Scale(math3d.V3(s[0], s[1], s[2])))
}

// appendPrimitive adds a triangle primitive to mesh in world space.
// Other primitive modes are skipped.
func appendPrimitive(doc *gltf.Document, prim *gltf.Primitive, world math3d.Mat4, mesh *Mesh) error {
	if prim.Mode != gltf.PrimitiveTriangles {
		return nil
	}
	posIdx, ok := prim.Attributes[gltf.POSITION]
	if !ok {
		return nil
	}

	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return fmt.Errorf("read positions: %w", err)
	}

	var normals [][3]float32
	if idx, ok := prim.Attributes[gltf.NORMAL]; ok {
		if normals, err = modeler.ReadNormal(doc, doc.Accessors[idx], nil); err != nil {
			return fmt.Errorf("read normals: %w", err)
		}
	}

	var uvs [][2]float32
	if idx, ok := prim.Attributes[gltf.TEXCOORD_0]; ok {
		if uvs, err = modeler.ReadTextureCoord(doc, doc.Accessors[idx], nil); err != nil {
			return fmt.Errorf("read uvs: %w", err)
		}
	}

	var indices []uint32
	if prim.Indices != nil {
		if indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil); err != nil {
			return fmt.Errorf("read indices: %w", err)
		}
	} else {
		indices = make([]uint32, len(positions))
		for i := range indices {
			indices[i] = uint32(i)
		}
	}

	normalMat := world.NormalMatrix()
	base := len(mesh.Vertices)
	for i, p := range positions {
		v := MeshVertex{Position: world.MulVec3(vec3(p))}
		if i < len(normals) {
			v.Normal = normalMat.MulVec3Dir(vec3(normals[i])).Normalize()
		}
		if i < len(uvs) {
			// glTF puts V=0 at the top of the image.
			v.UV = math3d.V2(float64(uvs[i][0]), 1-float64(uvs[i][1]))
		}
		mesh.Vertices = append(mesh.Vertices, v)
	}

	material := -1
	if prim.Material != nil {
		material = *prim.Material
	}

	// glTF fronts wind counter-clockwise; ours wind clockwise. A mirroring
	// transform has already flipped them once.
	a, b := 2, 1
	if world.Determinant() < 0 {
		a, b = 1, 2
	}
	for i := 0; i+2 < len(indices); i += 3 {
		tri := [3]uint32{indices[i], indices[i+a], indices[i+b]}
		if int(max(tri[0], tri[1], tri[2])) >= len(positions) {
			return fmt.Errorf("index %d out of range", max(tri[0], tri[1], tri[2]))
		}
		mesh.Faces = append(mesh.Faces, Face{
			V:        [3]int{base + int(tri[0]), base + int(tri[1]), base + int(tri[2])},
			Material: material,
		})
	}
	return nil
}

func vec3(v [3]float32) math3d.Vec3 {
	return math3d.V3(float64(v[0]), float64(v[1]), float64(v[2]))
}

func hasNormals(m *Mesh) bool {
	for _, v := range m.Vertices {
		if v.Normal.Len() > 0.001 {
			return true
		}
	}
	return false
}

// readImages returns the encoded bytes of every image, embedded or
// beside the model file.
func readImages(doc *gltf.Document, dir string) [][]byte {
	images := make([][]byte, len(doc.Images))
	for i, img := range doc.Images {
		switch {
		case img.BufferView != nil:
			if *img.BufferView >= len(doc.BufferViews) {
				continue
			}
			bv := doc.BufferViews[*img.BufferView]
			if bv.Buffer >= len(doc.Buffers) {
				continue
			}
			data := doc.Buffers[bv.Buffer].Data
			if end := bv.ByteOffset + bv.ByteLength; end <= len(data) {
				images[i] = data[bv.ByteOffset:end]
			}
		case img.IsEmbeddedResource():
			if data, err := img.MarshalData(); err == nil {
				images[i] = data
			}
		case img.URI != "":
			if data, err := os.ReadFile(filepath.Join(dir, img.URI)); err == nil {
				images[i] = data
			}
		}
	}
	return images
}

// BaseColorImage decodes the image used by the first textured material,
// or failing that the first decodable image.
func (m *Model) BaseColorImage() (image.Image, error) {
	for _, mat := range m.Mesh.Materials {
		if mat.Image >= 0 && mat.Image < len(m.Images) {
			if img, err := decodeImage(m.Images[mat.Image]); err == nil {
				return img, nil
			}
		}
	}
	for _, data := range m.Images {
		if img, err := decodeImage(data); err == nil {
			return img, nil
		}
	}
	return nil, ErrNoImage
}

func decodeImage(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, ErrNoImage
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	return img, err
}

// LoadGLB loads the geometry of a .glb or .gltf file.
func LoadGLB(path string) (*Mesh, error) {
	model, err := NewGLTFLoader().Load(path)
	if err != nil {
		return nil, err
	}
	return model.Mesh, nil
}

// LoadGLBWithTexture loads a model and its base color image. The image
// is nil when the model has none.
func LoadGLBWithTexture(path string) (*Mesh, image.Image, error) {
	model, err := NewGLTFLoader().Load(path)
	if err != nil {
		return nil, nil, err
	}
	img, err := model.BaseColorImage()
	if err != nil {
		img = nil
	}
	return model.Mesh, img, nil
}

// readMaterials converts the document's PBR materials. Missing factors take
// the glTF defaults.
func readMaterials(doc *gltf.Document) []Material {
	materials := make([]Material, 0, len(doc.Materials))
	for _, m := range doc.Materials {
		mat := Material{
			Name:      m.Name,
			BaseColor: [4]float64{1, 1, 1, 1},
			Metallic:  1,
			Roughness: 1,
			Image:     -1,
		}
		if pbr := m.PBRMetallicRoughness; pbr != nil {
			if pbr.BaseColorFactor != nil {
				mat.BaseColor = *pbr.BaseColorFactor
			}
			if pbr.MetallicFactor != nil {
				mat.Metallic = *pbr.MetallicFactor
			}
			if pbr.RoughnessFactor != nil {
				mat.Roughness = *pbr.RoughnessFactor
			}
			if tex := pbr.BaseColorTexture; tex != nil && tex.Index < len(doc.Textures) {
				if src := doc.Textures[tex.Index].Source; src != nil {
					mat.Image = *src
				}
			}
		}
		materials = append(materials, mat)
	}
	return materials
}
