package buttons

import (
	"errors"
	"fmt"

	"github.com/warthog618/go-gpiocdev"
)

// ErrUnmapped is returned for a button with no configured line.
var ErrUnmapped = errors.New("button not mapped to a gpio line")

// lineValuer is the part of *gpiocdev.Line the panel reads.
type lineValuer interface {
	Value() (int, error)
	Close() error
}

// GPIOPanel reads buttons wired to ground on pulled-up GPIO lines.
type GPIOPanel struct {
	lines map[Button]lineValuer
}

// requestLine is swapped in tests.
var requestLine = func(chip string, offset int) (lineValuer, error) {
	return gpiocdev.RequestLine(chip, offset, gpiocdev.AsInput, gpiocdev.WithPullUp, gpiocdev.AsActiveLow)
}

// OpenGPIOPanel requests one input line per button on chip.
func OpenGPIOPanel(chip string, offsets map[Button]int) (*GPIOPanel, error) {
	p := &GPIOPanel{lines: make(map[Button]lineValuer, len(offsets))}
	for _, b := range All {
		offset, ok := offsets[b]
		if !ok {
			continue
		}
		line, err := requestLine(chip, offset)
		if err != nil {
			_ = p.Close()
			return nil, fmt.Errorf("request %s line %s:%d: %w", b, chip, offset, err)
		}
		p.lines[b] = line
	}
	return p, nil
}

// Pressed reports the active-low level of b's line.
func (p *GPIOPanel) Pressed(b Button) (bool, error) {
	line, ok := p.lines[b]
	if !ok {
		return false, ErrUnmapped
	}
	v, err := line.Value()
	if err != nil {
		return false, err
	}
	return v == 1, nil
}

// Close releases every requested line.
func (p *GPIOPanel) Close() error {
	var errs []error
	for b, line := range p.lines {
		if err := line.Close(); err != nil {
			errs = append(errs, err)
		}
		delete(p.lines, b)
	}
	return errors.Join(errs...)
}
