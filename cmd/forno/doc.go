// Package main provides the forno CLI.
//
// Install once:
//
//	go install github.com/shashiranjanraj/forno/cmd/forno@latest
//
// Accounts and orders:
//
//	forno create-account alice s3cret            # new USER account
//	forno promote boss bosspw alice              # ADMIN elevates alice
//	forno order alice s3cret --size large        # place an order
//	forno list-orders alice s3cret               # own orders (ADMIN: all)
//	forno cancel alice s3cret                    # interactive when ambiguous
//	forno delete-account boss bosspw alice
//
// Legacy password-per-order table (no accounts, colon-namespaced like the
// rest of the maintenance surface):
//
//	forno legacy:create mario trattoria --size small
//	forno legacy:cancel mario trattoria
//	forno legacy:print-orders [admin-password]
//
// Tables live on the storage disk selected by STORAGE_DISK ("local" default,
// "s3" when S3_BUCKET is configured).
package main
