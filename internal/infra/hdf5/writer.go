// Package hdf5 persists sequence annotations as HDF5 archives. It needs the
// libhdf5 C library at build and run time.
package hdf5

import (
	"fmt"
	"strings"

	"gonum.org/v1/hdf5"

	"github.com/tranorrepository/h36m-fetch/internal/domain/entity"
)

type Writer struct{}

func NewWriter() *Writer {
	return &Writer{}
}

// WriteAnnotations writes the datasets into one HDF5 file, truncating any
// archive already at that path. Slash-separated dataset names create the
// intermediate groups, so "pose/2d" lands as dataset "2d" in group "pose".
func (w *Writer) WriteAnnotations(path string, datasets []entity.Dataset) error {
	f, err := hdf5.CreateFile(path, hdf5.F_ACC_TRUNC)
	if err != nil {
		return fmt.Errorf("create archive %s: %w", path, err)
	}
	defer f.Close()

	groups := make(map[string]*hdf5.Group)
	defer func() {
		for _, g := range groups {
			g.Close()
		}
	}()

	for _, ds := range datasets {
		parent := &f.CommonFG

		segments, leaf := splitDatasetName(ds.Name)
		prefix := ""
		for _, seg := range segments {
			prefix += seg + "/"
			g, ok := groups[prefix]
			if !ok {
				g, err = parent.CreateGroup(seg)
				if err != nil {
					return fmt.Errorf("create group %q in %s: %w", prefix, path, err)
				}
				groups[prefix] = g
			}
			parent = &g.CommonFG
		}

		if err := writeDataset(parent, leaf, ds); err != nil {
			return fmt.Errorf("write dataset %q to %s: %w", ds.Name, path, err)
		}
	}

	return nil
}

func writeDataset(parent *hdf5.CommonFG, name string, ds entity.Dataset) error {
	dims := make([]uint, len(ds.Shape))
	for i, d := range ds.Shape {
		dims[i] = uint(d)
	}

	space, err := hdf5.CreateSimpleDataspace(dims, nil)
	if err != nil {
		return fmt.Errorf("create dataspace: %w", err)
	}
	defer space.Close()

	dtype := hdf5.T_NATIVE_INT64
	if ds.Floats != nil {
		dtype = hdf5.T_NATIVE_DOUBLE
	}

	dset, err := parent.CreateDataset(name, dtype, space)
	if err != nil {
		return fmt.Errorf("create dataset: %w", err)
	}
	defer dset.Close()

	if ds.Floats != nil {
		err = dset.Write(&ds.Floats)
	} else {
		err = dset.Write(&ds.Ints)
	}
	if err != nil {
		return fmt.Errorf("write data: %w", err)
	}
	return nil
}

// splitDatasetName splits "pose/2d" into its group segments and leaf name.
func splitDatasetName(name string) (groups []string, leaf string) {
	parts := strings.Split(name, "/")
	return parts[:len(parts)-1], parts[len(parts)-1]
}
