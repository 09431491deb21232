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

package erm

import (
	"errors"
	"fmt"

	"github.com/containerd/errdefs"
)

var (
	// ErrCloudFunctionDirectoryNonExistent the configured source directory is not a readable directory
	ErrCloudFunctionDirectoryNonExistent = fmt.Errorf("cloud function directory non existent: %w", errdefs.ErrFailedPrecondition)
	// ErrFunctionNotFound the remote service reports no such cloud function
	ErrFunctionNotFound = fmt.Errorf("cloud function not found: %w", errdefs.ErrNotFound)
	// ErrInvalidCredentials the credentials payload is not a usable service account key
	ErrInvalidCredentials = fmt.Errorf("invalid credentials: %w", errdefs.ErrInvalidArgument)
	// ErrSourceUnreadable a file of the source directory cannot be archived
	ErrSourceUnreadable = fmt.Errorf("source unreadable: %w", errdefs.ErrDataLoss)
	// ErrUploadTransport the archive could not be transmitted
	ErrUploadTransport = fmt.Errorf("upload transport error: %w", errdefs.ErrUnavailable)
	// ErrDeployFailed coarse signal matched by every DeployFailedError
	ErrDeployFailed = errors.New("deploy failed")
)
