// Copyright 2020 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the 'License');
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an 'AS IS' BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ffo

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/BrunoReboul/gcfdeploy/utilities/erm"
)

// ZipDirectory writes to w a zip of every regular file under directoryPath, recursively.
// Entry names are relative to directoryPath, slash separated. Returns the number of entries
func ZipDirectory(directoryPath string, w io.Writer) (count int, err error) {
	// Walk does not follow a symlinked root
	root, err := filepath.EvalSymlinks(directoryPath)
	if err != nil {
		return 0, fmt.Errorf("%w %s %v", erm.ErrSourceUnreadable, directoryPath, err)
	}
	zipWriter := zip.NewWriter(w)
	err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return fmt.Errorf("%w %s %v", erm.ErrSourceUnreadable, path, err)
		}
		if info.IsDir() {
			return nil
		}
		// follow symlinks, keep only what resolves to a regular file
		info, err = os.Stat(path)
		if err != nil {
			return fmt.Errorf("%w %s %v", erm.ErrSourceUnreadable, path, err)
		}
		if !info.Mode().IsRegular() {
			return nil
		}
		relativePath, err := filepath.Rel(root, path)
		if err != nil {
			return fmt.Errorf("%w %s %v", erm.ErrSourceUnreadable, path, err)
		}
		err = addFile(zipWriter, path, filepath.ToSlash(relativePath), info)
		if err != nil {
			return err
		}
		count++
		return nil
	})
	if err != nil {
		return count, err
	}
	err = zipWriter.Close()
	if err != nil {
		return count, fmt.Errorf("zipWriter.Close %v", err)
	}
	return count, nil
}

func addFile(zipWriter *zip.Writer, path, name string, info os.FileInfo) (err error) {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w %s %v", erm.ErrSourceUnreadable, path, err)
	}
	defer file.Close()

	header, err := zip.FileInfoHeader(info)
	if err != nil {
		return fmt.Errorf("zip.FileInfoHeader %s %v", path, err)
	}
	header.Name = name
	header.Method = zip.Deflate
	entry, err := zipWriter.CreateHeader(header)
	if err != nil {
		return fmt.Errorf("zipWriter.CreateHeader %s %v", name, err)
	}
	_, err = io.Copy(entry, file)
	if err != nil {
		return fmt.Errorf("%w %s %v", erm.ErrSourceUnreadable, path, err)
	}
	return nil
}
