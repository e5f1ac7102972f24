// Package scene renders the landing page's rotating sphere into terminal
// cells. Each cell carries two vertically stacked pixels drawn with half
// blocks.
package scene

import (
	"math"
	"math/rand/v2"
	"strings"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

const (
	// FPS is the target frame rate of the render loop.
	FPS = 30
	// DeltaX and DeltaY are the per-frame rotation increments in radians.
	DeltaX = 0.001
	DeltaY = 0.002

	// TextureSize is the edge of the generated surface texture.
	TextureSize = 128
)

// FrameMsg asks the scene with the matching ID to advance one frame.
type FrameMsg struct {
	ID   uint64
	Time time.Time
}

type pointLight struct {
	pos       vec3
	color     colorful.Color
	intensity float64
}

type ambientLight struct {
	color     colorful.Color
	intensity float64
}

// Camera is a perspective camera looking down -Z at the origin.
type Camera struct {
	FOV    float64 // vertical, degrees
	Aspect float64
	Z      float64
}

var ids atomic.Uint64

// Scene is one mounted sphere. It is not safe for concurrent use; Bubble
// Tea drives it from its update loop.
type Scene struct {
	id     uint64
	width  int
	height int

	camera   Camera
	texture  *Texture
	point    pointLight
	ambient  ambientLight
	emissive colorful.Color

	shininess float64
	specular  float64

	rotX, rotY float64
	frames     int

	pixels []colorful.Color
	hit    []bool
	view   string
	closed bool
}

// New builds a scene for a width x height cell area with a randomly seeded
// texture.
func New(width, height int) *Scene {
	return NewWithRand(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())), width, height)
}

// NewWithRand builds a scene whose texture noise is drawn from r.
func NewWithRand(r *rand.Rand, width, height int) *Scene {
	s := &Scene{
		id:      ids.Add(1),
		camera:  Camera{FOV: 75, Z: 2.5, Aspect: 1},
		texture: NewTexture(r, TextureSize),
		point: pointLight{
			pos:       vec3{5, 5, 5},
			color:     mustHex("#a78bfa"),
			intensity: 2,
		},
		ambient:   ambientLight{color: mustHex("#3b82f6"), intensity: 0.5},
		emissive:  scaled(mustHex("#6d28d9"), 0.3),
		shininess: 10,
		specular:  float64(0x11) / 255,
	}
	s.SetSize(width, height)
	return s
}

// ID identifies the scene's frame messages.
func (s *Scene) ID() uint64 { return s.id }

// Init starts the render loop.
func (s *Scene) Init() tea.Cmd {
	return s.tick()
}

func (s *Scene) tick() tea.Cmd {
	if s.closed {
		return nil
	}
	id := s.id
	return tea.Tick(time.Second/FPS, func(t time.Time) tea.Msg {
		return FrameMsg{ID: id, Time: t}
	})
}

// Update advances on this scene's frame messages and schedules the next
// frame. Everything else, including frames for other scenes or frames that
// arrive after Close, is ignored.
func (s *Scene) Update(msg tea.Msg) tea.Cmd {
	f, ok := msg.(FrameMsg)
	if !ok || f.ID != s.id || s.closed {
		return nil
	}
	s.Step()
	return s.tick()
}

// Step rotates the sphere by one frame and re-renders.
func (s *Scene) Step() {
	if s.closed {
		return
	}
	s.rotX += DeltaX
	s.rotY += DeltaY
	s.frames++
	s.render()
}

// SetSize resizes the viewport and recomputes the camera aspect ratio.
func (s *Scene) SetSize(width, height int) {
	if s.closed {
		return
	}
	width = max(width, 1)
	height = max(height, 1)
	s.width, s.height = width, height
	s.camera.Aspect = float64(width) / float64(height*2)
	s.pixels = make([]colorful.Color, width*height*2)
	s.hit = make([]bool, width*height*2)
	s.render()
}

// View returns the last rendered frame.
func (s *Scene) View() string { return s.view }

// Close stops the loop and releases the texture and framebuffer.
func (s *Scene) Close() {
	s.closed = true
	s.texture = nil
	s.pixels = nil
	s.hit = nil
	s.view = ""
}

// Closed reports if Close was called.
func (s *Scene) Closed() bool { return s.closed }

// Rotation returns the current x and y rotation in radians.
func (s *Scene) Rotation() (float64, float64) { return s.rotX, s.rotY }

// Frames returns the number of frames stepped.
func (s *Scene) Frames() int { return s.frames }

// Camera returns the current camera.
func (s *Scene) Camera() Camera { return s.camera }

// Size returns the viewport in cells.
func (s *Scene) Size() (int, int) { return s.width, s.height }

func (s *Scene) render() {
	if s.closed {
		return
	}
	pw, ph := s.width, s.height*2
	eye := vec3{0, 0, s.camera.Z}
	tanHalf := math.Tan(s.camera.FOV * math.Pi / 360)

	for py := 0; py < ph; py++ {
		for px := 0; px < pw; px++ {
			i := py*pw + px
			nx := (2*(float64(px)+0.5)/float64(pw) - 1) * tanHalf * s.camera.Aspect
			ny := (1 - 2*(float64(py)+0.5)/float64(ph)) * tanHalf
			dir := vec3{nx, ny, -1}.normalize()

			// Unit sphere at the origin.
			b := eye.dot(dir)
			disc := b*b - (eye.dot(eye) - 1)
			if disc < 0 {
				s.hit[i] = false
				continue
			}
			t := -b - math.Sqrt(disc)
			p := eye.add(dir.scale(t))
			s.hit[i] = true
			s.pixels[i] = s.shade(p, eye)
		}
	}
	s.view = s.compose()
}

// shade lights surface point p (also its normal) as seen from eye.
func (s *Scene) shade(p, eye vec3) colorful.Color {
	local := unrotate(p, s.rotX, s.rotY)
	theta := math.Acos(math.Max(-1, math.Min(1, local.y)))
	phi := math.Atan2(local.z, -local.x)
	if phi < 0 {
		phi += 2 * math.Pi
	}
	base := s.texture.At(phi/(2*math.Pi), theta/math.Pi)

	n := p
	l := s.point.pos.sub(p).normalize()
	v := eye.sub(p).normalize()

	diffuse := math.Max(n.dot(l), 0) * s.point.intensity
	h := l.add(v).normalize()
	spec := math.Pow(math.Max(n.dot(h), 0), s.shininess) * s.specular * s.point.intensity

	light := add(scaled(s.ambient.color, s.ambient.intensity), scaled(s.point.color, diffuse))
	out := add(mul(base, light), scaled(s.point.color, spec))
	return add(out, s.emissive).Clamped()
}

func (s *Scene) compose() string {
	pw := s.width
	var sb strings.Builder
	for cy := 0; cy < s.height; cy++ {
		if cy > 0 {
			sb.WriteByte('\n')
		}
		for cx := 0; cx < s.width; cx++ {
			top := (2*cy)*pw + cx
			bot := (2*cy+1)*pw + cx
			switch {
			case s.hit[top] && s.hit[bot]:
				sb.WriteString(lipgloss.NewStyle().
					Foreground(lipgloss.Color(s.pixels[top].Hex())).
					Background(lipgloss.Color(s.pixels[bot].Hex())).
					Render("▀"))
			case s.hit[top]:
				sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(s.pixels[top].Hex())).Render("▀"))
			case s.hit[bot]:
				sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(s.pixels[bot].Hex())).Render("▄"))
			default:
				sb.WriteByte(' ')
			}
		}
	}
	return sb.String()
}

func scaled(c colorful.Color, k float64) colorful.Color {
	return colorful.Color{R: c.R * k, G: c.G * k, B: c.B * k}
}

func add(a, b colorful.Color) colorful.Color {
	return colorful.Color{R: a.R + b.R, G: a.G + b.G, B: a.B + b.B}
}

func mul(a, b colorful.Color) colorful.Color {
	return colorful.Color{R: a.R * b.R, G: a.G * b.G, B: a.B * b.B}
}
