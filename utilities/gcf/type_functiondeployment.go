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
	"time"

	"github.com/BrunoReboul/gcfdeploy/utilities/deploy"
	"google.golang.org/api/cloudfunctions/v1"
)

// DefaultPollInterval between two operation status checks when waiting for the patch to complete
const DefaultPollInterval = 5 * time.Second

// FunctionDeployment settings and artifacts structure
type FunctionDeployment struct {
	Artifacts struct {
		CloudFunction    *cloudfunctions.CloudFunction
		Source           sourceKind
		ZipFullPath      string
		ZipEntryCount    int
		UploadStatusCode int
		Operation        *cloudfunctions.Operation
	}
	Core         *deploy.Core
	Services     *Services
	PollInterval time.Duration
}

// NewFunctionDeployment create deployment structure
func NewFunctionDeployment(core *deploy.Core, services *Services) *FunctionDeployment {
	return &FunctionDeployment{
		Core:         core,
		Services:     services,
		PollInterval: DefaultPollInterval,
	}
}
