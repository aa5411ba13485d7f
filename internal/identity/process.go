package identity

import (
	"strings"

	"github.com/shirou/gopsutil/v4/process"
)

// GopsutilNamer resolves process executable names via gopsutil.
type GopsutilNamer struct{}

// Name returns the lowercased executable name of the process.
func (GopsutilNamer) Name(pid int32) (string, error) {
	p, err := process.NewProcess(pid)
	if err != nil {
		return "", err
	}
	name, err := p.Name()
	if err != nil {
		return "", err
	}
	return strings.ToLower(name), nil
}
