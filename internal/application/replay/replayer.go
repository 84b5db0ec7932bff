package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/younwookim/charmove/internal/domain/entity"
)

// Replayer plays back recorded input one frame per physics step
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	if err := json.NewDecoder(file).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}

	return &data, nil
}

// NextFrame returns the input for the current frame and advances.
// It returns false once every frame has been played.
func (r *Replayer) NextFrame() (entity.InputFrame, bool) {
	if r.frame >= len(r.data.Frames) {
		return entity.InputFrame{}, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++
	return fi.Frame(), true
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// World returns the world name the replay was recorded in
func (r *Replayer) World() string {
	return r.data.World
}

// Done reports whether playback has finished
func (r *Replayer) Done() bool {
	return r.frame >= len(r.data.Frames)
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}
