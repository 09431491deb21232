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

package gcf

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BrunoReboul/gcfdeploy/utilities/ffo"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// zipSource zips the function directory into a new temporary file, left open for upload
func (functionDeployment *FunctionDeployment) zipSource() (zipFile *os.File, err error) {
	functionDeployment.Artifacts.ZipFullPath = filepath.Join(os.TempDir(), fmt.Sprintf("%s.zip", uuid.New()))
	zipFile, err = os.Create(functionDeployment.Artifacts.ZipFullPath)
	if err != nil {
		return nil, fmt.Errorf("os.Create %s %v", functionDeployment.Artifacts.ZipFullPath, err)
	}
	functionDeployment.Artifacts.ZipEntryCount, err = ffo.ZipDirectory(functionDeployment.Core.Settings.FunctionDirectory, zipFile)
	if err != nil {
		functionDeployment.removeZip(zipFile)
		return nil, err
	}
	return zipFile, nil
}

// removeZip closes and deletes the temporary zip
func (functionDeployment *FunctionDeployment) removeZip(zipFile *os.File) {
	zipFile.Close()
	err := os.Remove(functionDeployment.Artifacts.ZipFullPath)
	if err != nil {
		functionDeployment.Core.Logger.Warn("gcf cannot remove temporary zip",
			zap.String("path", functionDeployment.Artifacts.ZipFullPath), zap.Error(err))
		return
	}
	functionDeployment.Core.Logger.Debug("gcf temporary zip removed", zap.String("path", functionDeployment.Artifacts.ZipFullPath))
}
