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
	"github.com/BrunoReboul/gcfdeploy/utilities/str"
	"go.uber.org/zap"
)

// Deploy uploads the directory content and patch the existing cloud function
func (functionDeployment *FunctionDeployment) Deploy() (err error) {
	log := functionDeployment.Core.Logger
	err = functionDeployment.getCloudFunction()
	if err != nil {
		return err
	}
	log.Info("gcf cloud function found",
		zap.String("name", functionDeployment.Artifacts.CloudFunction.Name),
		zap.String("labels", str.FlattenLabels(functionDeployment.Artifacts.CloudFunction.Labels)))

	zipFile, err := functionDeployment.zipSource()
	if err != nil {
		return err
	}
	defer functionDeployment.removeZip(zipFile)
	log.Info("gcf sources zipped", zap.Int("entries", functionDeployment.Artifacts.ZipEntryCount))

	err = functionDeployment.uploadSource(zipFile)
	if err != nil {
		return err
	}

	err = functionDeployment.patchCloudFunction()
	if err != nil {
		return err
	}

	if functionDeployment.Core.Settings.Wait {
		err = functionDeployment.waitOperation()
		if err != nil {
			return err
		}
	}

	if functionDeployment.Core.Settings.DumpPath != "" {
		err = functionDeployment.dump()
		if err != nil {
			return err
		}
	}
	return nil
}
