// Copyright 2025 The packetd Authors
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package method

func init() {
	register(ClassTx, 10, "Select", decodeTxSelect)
	register(ClassTx, 11, "Select-Ok", decodeTxSelectOk)
	register(ClassTx, 20, "Commit", decodeTxCommit)
	register(ClassTx, 21, "Commit-Ok", decodeTxCommitOk)
	register(ClassTx, 30, "Rollback", decodeTxRollback)
	register(ClassTx, 31, "Rollback-Ok", decodeTxRollbackOk)
}

type TxSelect struct{}

func (TxSelect) Class() Class             { return ClassTx }
func (TxSelect) MethodID() uint16         { return 10 }
func (TxSelect) Encode(out []byte) []byte { return out }

func decodeTxSelect(buf []byte) ([]byte, Arguments, error) { return buf, TxSelect{}, nil }

type TxSelectOk struct{}

func (TxSelectOk) Class() Class             { return ClassTx }
func (TxSelectOk) MethodID() uint16         { return 11 }
func (TxSelectOk) Encode(out []byte) []byte { return out }

func decodeTxSelectOk(buf []byte) ([]byte, Arguments, error) { return buf, TxSelectOk{}, nil }

type TxCommit struct{}

func (TxCommit) Class() Class             { return ClassTx }
func (TxCommit) MethodID() uint16         { return 20 }
func (TxCommit) Encode(out []byte) []byte { return out }

func decodeTxCommit(buf []byte) ([]byte, Arguments, error) { return buf, TxCommit{}, nil }

type TxCommitOk struct{}

func (TxCommitOk) Class() Class             { return ClassTx }
func (TxCommitOk) MethodID() uint16         { return 21 }
func (TxCommitOk) Encode(out []byte) []byte { return out }

func decodeTxCommitOk(buf []byte) ([]byte, Arguments, error) { return buf, TxCommitOk{}, nil }

type TxRollback struct{}

func (TxRollback) Class() Class             { return ClassTx }
func (TxRollback) MethodID() uint16         { return 30 }
func (TxRollback) Encode(out []byte) []byte { return out }

func decodeTxRollback(buf []byte) ([]byte, Arguments, error) { return buf, TxRollback{}, nil }

type TxRollbackOk struct{}

func (TxRollbackOk) Class() Class             { return ClassTx }
func (TxRollbackOk) MethodID() uint16         { return 31 }
func (TxRollbackOk) Encode(out []byte) []byte { return out }

func decodeTxRollbackOk(buf []byte) ([]byte, Arguments, error) { return buf, TxRollbackOk{}, nil }
