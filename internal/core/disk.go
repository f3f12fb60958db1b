package core

import (
	"github.com/shirou/gopsutil/v4/disk"
)

// VolumeUsage describes the volume that contains a scanned path.
type VolumeUsage struct {
	Path        string
	TotalBytes  uint64
	FreeBytes   uint64
	UsedPercent float64
}

// Volume reports capacity and free space for the volume containing path.
func Volume(path string) (VolumeUsage, error) {
	usage, err := disk.Usage(path)
	if err != nil {
		return VolumeUsage{}, err
	}
	return VolumeUsage{
		Path:        usage.Path,
		TotalBytes:  usage.Total,
		FreeBytes:   usage.Free,
		UsedPercent: usage.UsedPercent,
	}, nil
}
