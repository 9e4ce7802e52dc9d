package processor

import "fmt"

func (p *ImageProcessor) ValidateImage(data []byte, maxSize int64) error {
	if maxSize > 0 && int64(len(data)) > maxSize {
		return fmt.Errorf("%w: %d bytes, limit %d", ErrTooLarge, len(data), maxSize)
	}

	if _, _, err := decodeImage(data, "image"); err != nil {
		return err
	}

	return nil
}
