// Package scaffold materializes a blueprint on disk.
//
// The Scaffolder walks the blueprint's directories in declared order. Each
// directory is created when missing, then each of its files is created with
// content chosen by the template rules. Nothing that already exists is ever
// modified, so a run can be repeated safely: a second run over the same root
// reports every path as already present.
//
// The first filesystem error aborts the run. Work done before the failure is
// left in place; re-running after fixing the cause resumes where it stopped.
package scaffold
