/*
 * Copyright (c) 2025, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package provider

import (
	"github.com/wso2/identity-registration-client/internal/profile/service"
	"github.com/wso2/identity-registration-client/internal/profile/store"
	"github.com/wso2/identity-registration-client/internal/system/httpclient"
)

// ProfileProviderInterface defines the interface for the profile provider.
type ProfileProviderInterface interface {
	GetReconciler() *service.Reconciler
	GetRemoteService() *service.RemoteService
}

// ProfileProvider is the default implementation of the
// ProfileProviderInterface.
type ProfileProvider struct {
	reconciler *service.Reconciler
	remote     *service.RemoteService
}

// NewProfileProvider wires the remote service and the reconciler over the
// shared store and backend client.
func NewProfileProvider(localStore *store.Store, client *httpclient.Client) ProfileProviderInterface {

	remote := service.NewRemoteService(client)
	return &ProfileProvider{
		reconciler: service.NewReconciler(localStore, remote),
		remote:     remote,
	}
}

// GetReconciler returns the reconciler instance.
func (p *ProfileProvider) GetReconciler() *service.Reconciler {

	return p.reconciler
}

// GetRemoteService returns the remote profile service instance.
func (p *ProfileProvider) GetRemoteService() *service.RemoteService {

	return p.remote
}
