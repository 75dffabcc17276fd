package render

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// boxes draws unit cubes scaled to node sizes. The mesh and materials are created on first
// use so GPU resources are allocated after the window/OpenGL context exists.
type boxes struct {
	loaded bool
	mesh   rl.Mesh
	flat   rl.Material // UI surfaces: exact colours, no shading
	lit    rl.Material // room: directional light + ambient

	viewPos  [3]float32
	lightDir [3]float32
}

func newBoxes() *boxes {
	return &boxes{lightDir: [3]float32{0.5, 1, 0.5}}
}

// setView sets camera position and direction-to-light for this frame.
func (b *boxes) setView(viewPos, lightDir [3]float32) {
	b.viewPos = viewPos
	b.lightDir = lightDir
}

func (b *boxes) ensure() {
	if b.loaded {
		return
	}
	b.mesh = rl.GenMeshCube(1, 1, 1)
	b.flat = rl.LoadMaterialDefault()
	b.lit = rl.LoadMaterialDefault()
	if shader := rl.LoadShaderFromMemory(litVS, litFS); rl.IsShaderValid(shader) {
		b.lit.Shader = shader
	}
	b.loaded = true
}

// draw renders one box with the given model transform (scale already applied).
func (b *boxes) draw(transform rl.Matrix, tint color.RGBA, lit bool) {
	b.ensure()
	mtl := b.flat
	if lit {
		mtl = b.lit
		b.setLitUniforms(mtl.Shader)
	}
	if albedo := mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = tint
	}
	rl.DrawMesh(b.mesh, mtl, transform)
}

const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
out vec3 fragPosition;
out vec3 fragNormal;
void main() {
  vec4 worldPos = matModel * vec4(vertexPosition, 1.0);
  fragPosition = worldPos.xyz;
  fragNormal = mat3(matModel) * vertexNormal;
  gl_Position = matProjection * matView * worldPos;
}
`
	litFS = `#version 330
in vec3 fragPosition;
in vec3 fragNormal;
uniform vec4 colDiffuse;
uniform vec3 viewPos;
uniform vec3 lightDir;
uniform vec4 ambient;
uniform vec3 lightColor;
uniform float lightIntensity;
out vec4 finalColor;
void main() {
  vec4 tint = colDiffuse;
  vec3 N = normalize(fragNormal);
  vec3 L = normalize(lightDir);
  float NdotL = abs(dot(N, L));
  vec3 diffuse = tint.rgb * NdotL * lightColor * lightIntensity;
  vec3 amb = ambient.rgb * tint.rgb;
  finalColor = vec4(amb + diffuse, tint.a);
}
`
)

// Hemisphere-like light: bright ambient, soft warm directional term.
var (
	ambientLight = [4]float32{0.55, 0.55, 0.58, 1.0}
	lightColor   = [3]float32{1.0, 0.98, 0.95}
)

const lightIntensity = float32(0.45)

// setLitUniforms sets the light uniforms on shader (cgo-safe: local arrays).
func (b *boxes) setLitUniforms(shader rl.Shader) {
	if !rl.IsShaderValid(shader) {
		return
	}
	viewPos := [3]float32{b.viewPos[0], b.viewPos[1], b.viewPos[2]}
	lightDir := [3]float32{b.lightDir[0], b.lightDir[1], b.lightDir[2]}
	amb := ambientLight
	lc := lightColor
	if loc := rl.GetShaderLocation(shader, "viewPos"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, viewPos[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightDir"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, lightDir[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "ambient"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, amb[:], rl.ShaderUniformVec4, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightColor"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, lc[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightIntensity"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{lightIntensity}, rl.ShaderUniformFloat)
	}
}
