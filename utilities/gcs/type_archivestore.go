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

package gcs

import (
	"context"
	"fmt"
	"io"

	"cloud.google.com/go/storage"
)

// ArchiveStore is what the deployment needs from cloud storage
type ArchiveStore interface {
	Upload(ctx context.Context, bucketName, objectName string, content io.Reader) error
	Close() error
}

// storageArchiveStore makes a *storage.Client satisfy ArchiveStore
type storageArchiveStore struct {
	client *storage.Client
}

// NewArchiveStore wraps a storage client
func NewArchiveStore(client *storage.Client) ArchiveStore {
	return &storageArchiveStore{client: client}
}

// Upload overwrites the object, no precondition, no versioning.
// A failed copy cancels the writer so the existing object is left untouched
func (s *storageArchiveStore) Upload(ctx context.Context, bucketName, objectName string, content io.Reader) (err error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	storageObjectWriter := s.client.Bucket(bucketName).Object(objectName).NewWriter(ctx)
	storageObjectWriter.ContentType = "application/zip"
	_, err = io.Copy(storageObjectWriter, content)
	if err != nil {
		// Close would commit the bytes already written
		cancel()
		return fmt.Errorf("io.Copy(storageObjectWriter, content): %s %v", objectName, err)
	}
	err = storageObjectWriter.Close()
	if err != nil {
		return fmt.Errorf("storageObjectWriter.Close(): %s %v", objectName, err)
	}
	return nil
}

func (s *storageArchiveStore) Close() error {
	return s.client.Close()
}
