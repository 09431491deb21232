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
	"time"

	"github.com/BrunoReboul/gcfdeploy/utilities/ffo"
	"go.uber.org/zap"
)

// deploymentRecord what is dumped after a deployment, never the credentials
type deploymentRecord struct {
	FunctionName     string    `yaml:"functionName"`
	Source           string    `yaml:"source"`
	SourceURL        string    `yaml:"sourceURL"`
	ZipEntryCount    int       `yaml:"zipEntryCount"`
	UploadStatusCode int       `yaml:"uploadStatusCode,omitempty"`
	OperationName    string    `yaml:"operationName"`
	OperationDone    bool      `yaml:"operationDone"`
	DumpTimestamp    time.Time `yaml:"dumpTimestamp"`
}

func (functionDeployment *FunctionDeployment) dump() (err error) {
	artifacts := functionDeployment.Artifacts
	record := deploymentRecord{
		FunctionName:     functionDeployment.Core.Settings.FunctionPath(),
		Source:           artifacts.Source.String(),
		ZipEntryCount:    artifacts.ZipEntryCount,
		UploadStatusCode: artifacts.UploadStatusCode,
		DumpTimestamp:    time.Now(),
	}
	switch artifacts.Source {
	case sourceArchiveURL:
		record.SourceURL = artifacts.CloudFunction.SourceArchiveUrl
	default:
		record.SourceURL = artifacts.CloudFunction.SourceUploadUrl
	}
	if artifacts.Operation != nil {
		record.OperationName = artifacts.Operation.Name
		record.OperationDone = artifacts.Operation.Done
	}
	err = ffo.MarshalYAMLWrite(functionDeployment.Core.Settings.DumpPath, record)
	if err != nil {
		return fmt.Errorf("ffo.MarshalYAMLWrite %v", err)
	}
	functionDeployment.Core.Logger.Info("gcf deployment dumped", zap.String("path", functionDeployment.Core.Settings.DumpPath))
	return nil
}
