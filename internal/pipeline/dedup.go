package pipeline

import (
	"image"
	"os"

	"github.com/corona10/goimagehash"
	"github.com/rs/zerolog"
)

// dupThreshold is the maximum Hamming distance between two dHash values
// below which images are considered perceptually identical.
const dupThreshold = 10

// FilterDuplicates drops tasks whose images are perceptually identical to
// an earlier task, keeping the first occurrence. It runs before the task
// list is handed to the runner, so the one-entry-per-task guarantee is
// untouched. Read, decode, or hash failures never drop a task (graceful
// degradation: an undecodable image is kept and left to the run).
func FilterDuplicates(tasks []FileTask, log zerolog.Logger) []FileTask {
	kept := make([]FileTask, 0, len(tasks))
	var hashes []*goimagehash.ImageHash

	for _, task := range tasks {
		img, err := decodeFile(task.Path)
		if err != nil {
			kept = append(kept, task)
			continue
		}
		hash, err := goimagehash.DifferenceHash(img)
		if err != nil {
			kept = append(kept, task)
			continue
		}

		dup := false
		for _, h := range hashes {
			if dist, err := hash.Distance(h); err == nil && dist < dupThreshold {
				dup = true
				break
			}
		}
		if dup {
			log.Warn().Str("file", task.Name).Msg("skipping perceptual duplicate")
			continue
		}

		hashes = append(hashes, hash)
		kept = append(kept, task)
	}
	return kept
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	return img, err
}
