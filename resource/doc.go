// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package resource defines how fonts obtain their raw data.
//
// A Provider looks up binary resources by kind and number and hands out
// locked handles. Each successful Lock must be paired with one Unlock; the
// provider does its own reference counting so several consumers can share
// one resource.
//
// Manager is an in-memory Provider. LoadPatches fills a Manager from
// patch files on any fs.FS:
//
//	m := resource.NewManager()
//	if _, err := resource.LoadPatches(os.DirFS("game"), m); err != nil {
//	    log.Fatal(err)
//	}
//	h, err := m.Lock(resource.KindFont, 4)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer m.Unlock(h)
package resource
