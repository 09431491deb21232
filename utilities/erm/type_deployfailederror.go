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

// DeployFailedError is what a caller sees once networking began.
// The message never carries the cause, Cause and Unwrap do.
type DeployFailedError struct {
	cause error
}

// NewDeployFailedError wraps the cause of a failed deployment
func NewDeployFailedError(cause error) *DeployFailedError {
	return &DeployFailedError{cause: cause}
}

func (e *DeployFailedError) Error() string {
	return ErrDeployFailed.Error()
}

// Is matches ErrDeployFailed
func (e *DeployFailedError) Is(target error) bool {
	return target == ErrDeployFailed
}

// Unwrap exposes the cause to errors.Is and errors.As
func (e *DeployFailedError) Unwrap() error {
	return e.cause
}

// Cause returns the original error, nil when unknown
func (e *DeployFailedError) Cause() error {
	return e.cause
}
