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

package service

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/wso2/identity-registration-client/internal/profile/model"
	"github.com/wso2/identity-registration-client/internal/profile/store"
	"github.com/wso2/identity-registration-client/internal/system/log"
)

// Session is the ProfileSession value produced by reconciliation: the
// canonical identity (server copy when reachable, cached copy otherwise)
// and the status derived for the UI.
type Session struct {
	Identity *model.Identity
	Status   model.RegistrationStatus
}

// Reconciler merges the locally cached identity with the authoritative
// server record. It is the only writer of the local store.
//
// Reconciliation runs on every screen focus; overlapping runs are allowed
// and the newest call is authoritative. Every run takes a monotonically
// increasing sequence number, and a run whose number is older than the last
// applied one neither writes the store nor replaces the session. That
// ordering is a correctness requirement: an older successful response must
// not overwrite a newer one.
type Reconciler struct {
	store  *store.Store
	remote *RemoteService

	seq     atomic.Uint64
	mu      sync.Mutex
	applied uint64
	session *Session
}

// NewReconciler creates a Reconciler over the local store and the remote
// service.
func NewReconciler(localStore *store.Store, remote *RemoteService) *Reconciler {
	return &Reconciler{
		store:  localStore,
		remote: remote,
	}
}

// Reconcile derives the canonical profile and registration status.
//
// The cached record is always preferred over a blank screen: a transient
// network failure degrades the status to unknown but keeps the identity, and
// only the combination of an unreadable store and no remote data yields the
// error state. Reconcile never fails; every failure mode maps to a status.
func (r *Reconciler) Reconcile(ctx context.Context) Session {

	seq := r.seq.Add(1)
	logger := log.GetLogger()

	local, err := r.store.Get(ctx)
	if err != nil {
		logger.Error("Local profile store is unreadable", log.Error(err))
		return r.apply(ctx, seq, Session{Identity: nil, Status: model.StatusError}, nil)
	}
	if local == nil {
		return r.apply(ctx, seq, Session{Identity: nil, Status: model.StatusNotRegistered}, nil)
	}

	remote, err := r.remote.FindByPhone(ctx, local.Phone)
	if err != nil {
		// The cached record is still shown, flagged as unverified.
		logger.Warn("Remote lookup failed, serving cached identity", log.Error(err))
		return r.apply(ctx, seq, Session{Identity: local, Status: model.StatusUnknown}, nil)
	}
	if remote == nil {
		// A lookup miss is not an error: the backend no longer knows this
		// phone number.
		return r.apply(ctx, seq, Session{Identity: local, Status: model.StatusNotRegistered}, nil)
	}

	session := Session{Identity: remote, Status: model.ParseStatus(remote.Status)}
	return r.apply(ctx, seq, session, remote)
}

// Adopt installs a canonical record obtained outside reconciliation (OTP
// verification, registration submit) into the store and the session. With no
// record to install the current session stays as it is; adoption never
// crashes the caller.
func (r *Reconciler) Adopt(ctx context.Context, identity *model.Identity) Session {
	if identity == nil {
		r.mu.Lock()
		defer r.mu.Unlock()
		if r.session != nil {
			return *r.session
		}
		return Session{Status: model.StatusNotRegistered}
	}

	seq := r.seq.Add(1)
	session := Session{Identity: identity, Status: model.ParseStatus(identity.Status)}
	return r.apply(ctx, seq, session, identity)
}

// Session returns the current ProfileSession, or nil when reconciliation has
// not yet run.
func (r *Reconciler) Session() *Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.session
}

// SignOut clears both the persisted slot and the in-memory session. The
// sequence bump ensures an in-flight reconciliation cannot resurrect the
// signed-out identity.
func (r *Reconciler) SignOut(ctx context.Context) error {
	seq := r.seq.Add(1)

	r.mu.Lock()
	defer r.mu.Unlock()
	if seq < r.applied {
		return nil
	}
	r.applied = seq
	r.session = nil
	return r.store.Clear(ctx)
}

// apply installs a reconciliation result unless a newer one has already been
// applied. The persisted write and the session replacement happen under the
// same guard so they cannot diverge.
func (r *Reconciler) apply(ctx context.Context, seq uint64, session Session, persist *model.Identity) Session {

	r.mu.Lock()
	defer r.mu.Unlock()

	if seq < r.applied {
		log.GetLogger().Debug("Discarding stale reconciliation result", log.Any("seq", seq))
		return session
	}
	r.applied = seq
	r.session = &session

	if persist != nil {
		if err := r.store.Put(ctx, persist); err != nil {
			// The fresh record is still served this session; only the cache
			// write is lost.
			log.GetLogger().Warn("Persisting reconciled identity failed", log.Error(err))
		}
	}
	return session
}
