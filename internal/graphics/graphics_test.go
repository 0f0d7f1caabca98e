package graphics

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"freelook/internal/vmath"

	"github.com/fsnotify/fsnotify"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeshDataValidate(t *testing.T) {
	tri := []float32{
		0, 0, 0, 1, 0, 0,
		1, 0, 0, 0, 1, 0,
		0, 1, 0, 0, 0, 1,
	}

	tests := []struct {
		name    string
		data    MeshData
		wantErr string
	}{
		{name: "plain", data: MeshData{Vertices: tri}},
		{name: "indexed", data: MeshData{Vertices: tri, Indices: []uint32{0, 1, 2}}},
		{name: "instanced", data: MeshData{Vertices: tri, Instances: []vmath.Mat4{vmath.Identity()}}},
		{name: "empty", data: MeshData{}, wantErr: "no vertices"},
		{name: "ragged", data: MeshData{Vertices: tri[:7]}, wantErr: "not a multiple of 6"},
		{name: "index out of range", data: MeshData{Vertices: tri, Indices: []uint32{0, 1, 3}}, wantErr: "out of range"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.data.validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				assert.Equal(t, 3, tt.data.VertexCount())
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestInstanceLayout(t *testing.T) {
	assert.Equal(t, 64, mat4Size, "instance stride is one packed matrix")
	assert.Equal(t, 24, vertexStride)
}

func TestScaledSize(t *testing.T) {
	w, h := scaledSize(1024, 768, 4)
	assert.Equal(t, int32(256), w)
	assert.Equal(t, int32(192), h)

	w, h = scaledSize(3, 0, 4)
	assert.Equal(t, int32(1), w, "never zero-sized")
	assert.Equal(t, int32(1), h)

	w, h = scaledSize(800, 600, 0)
	assert.Equal(t, int32(800), w)
	assert.Equal(t, int32(600), h)
}

func TestCString(t *testing.T) {
	assert.Equal(t, "U_VIEW\x00", cString("U_VIEW"))
	assert.Equal(t, "U_VIEW\x00", cString("U_VIEW\x00"))
	assert.Equal(t, "failed", trimLog("failed\n\x00\x00"))
}

func TestErrorName(t *testing.T) {
	assert.Equal(t, "GL_INVALID_OPERATION", errorName(gl.INVALID_OPERATION))
	assert.Equal(t, "GL_OUT_OF_MEMORY", errorName(gl.OUT_OF_MEMORY))
	assert.Equal(t, "unknown", errorName(0x1234))
}

func TestWatcherRelevant(t *testing.T) {
	dir := t.TempDir()
	vert := filepath.Join(dir, "cube.vert")
	w := &Watcher{files: map[string]struct{}{vert: {}}}

	assert.True(t, w.relevant(fsnotify.Event{Name: vert, Op: fsnotify.Write}))
	assert.True(t, w.relevant(fsnotify.Event{Name: vert, Op: fsnotify.Create}))
	assert.False(t, w.relevant(fsnotify.Event{Name: vert, Op: fsnotify.Chmod}))
	assert.False(t, w.relevant(fsnotify.Event{Name: filepath.Join(dir, "notes.txt"), Op: fsnotify.Write}))
}

func TestWatcherSeesEdits(t *testing.T) {
	dir := t.TempDir()
	vert := filepath.Join(dir, "cube.vert")
	frag := filepath.Join(dir, "cube.frag")
	require.NoError(t, os.WriteFile(vert, []byte("#version 410 core\n"), 0o644))
	require.NoError(t, os.WriteFile(frag, []byte("#version 410 core\n"), 0o644))

	w, err := NewWatcher(vert, frag)
	require.NoError(t, err)
	defer w.Close()

	assert.False(t, w.Changed())

	require.NoError(t, os.WriteFile(filepath.Join(dir, "unrelated.txt"), []byte("x"), 0o644))
	time.Sleep(50 * time.Millisecond)
	assert.False(t, w.Changed(), "other files in the directory are ignored")

	require.NoError(t, os.WriteFile(frag, []byte("#version 410 core\nvoid main() {}\n"), 0o644))
	assert.Eventually(t, w.Changed, 2*time.Second, 10*time.Millisecond)
}
