package repository

import (
	"context"
	"time"

	"deep-vault/internal/core/domain"
	"deep-vault/internal/core/port"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockFileRepository struct {
	mock.Mock
}

func NewMockFileRepository() *MockFileRepository {
	return &MockFileRepository{}
}

func (m *MockFileRepository) Create(ctx context.Context, record domain.FileRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockFileRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.FileRecord, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*domain.FileRecord), args.Error(1)
}

func (m *MockFileRepository) FindCanonicalByHash(ctx context.Context, contentHash string) (*domain.FileRecord, error) {
	args := m.Called(ctx, contentHash)
	return args.Get(0).(*domain.FileRecord), args.Error(1)
}

func (m *MockFileRepository) FindByOwnerAndHash(ctx context.Context, ownerID uuid.UUID, contentHash string) (*domain.FileRecord, error) {
	args := m.Called(ctx, ownerID, contentHash)
	return args.Get(0).(*domain.FileRecord), args.Error(1)
}

func (m *MockFileRepository) List(ctx context.Context, ownerID uuid.UUID, filter port.FileListFilter) ([]domain.FileRecord, int64, error) {
	args := m.Called(ctx, ownerID, filter)
	return args.Get(0).([]domain.FileRecord), args.Get(1).(int64), args.Error(2)
}

func (m *MockFileRepository) UpdateName(ctx context.Context, id uuid.UUID, name string) error {
	args := m.Called(ctx, id, name)
	return args.Error(0)
}

func (m *MockFileRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.FileStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockFileRepository) UpdateVisibility(ctx context.Context, id uuid.UUID, visibility domain.Visibility) error {
	args := m.Called(ctx, id, visibility)
	return args.Error(0)
}

func (m *MockFileRepository) SetTrashed(ctx context.Context, id, ownerID uuid.UUID, trashed bool) error {
	args := m.Called(ctx, id, ownerID, trashed)
	return args.Error(0)
}

func (m *MockFileRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockFileRepository) IncrementRefCount(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockFileRepository) DecrementRefCountByStorageKey(ctx context.Context, storageKey string, excludeID uuid.UUID) error {
	args := m.Called(ctx, storageKey, excludeID)
	return args.Error(0)
}

func (m *MockFileRepository) CountByStorageKey(ctx context.Context, storageKey string, excludeID uuid.UUID) (int, error) {
	args := m.Called(ctx, storageKey, excludeID)
	return args.Int(0), args.Error(1)
}

func (m *MockFileRepository) ExistsByStorageKey(ctx context.Context, storageKey string) (bool, error) {
	args := m.Called(ctx, storageKey)
	return args.Bool(0), args.Error(1)
}

func (m *MockFileRepository) ListTrashed(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]domain.FileRecord, error) {
	args := m.Called(ctx, ownerID, limit, offset)
	return args.Get(0).([]domain.FileRecord), args.Error(1)
}

func (m *MockFileRepository) TrashStats(ctx context.Context, ownerID uuid.UUID) (*domain.TrashStats, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(*domain.TrashStats), args.Error(1)
}

func (m *MockFileRepository) ListActiveByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.FileRecord, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]domain.FileRecord), args.Error(1)
}

func (m *MockFileRepository) FindStaleUploading(ctx context.Context, cutoff time.Time) ([]domain.FileRecord, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).([]domain.FileRecord), args.Error(1)
}

type MockTagRepository struct {
	mock.Mock
}

func NewMockTagRepository() *MockTagRepository {
	return &MockTagRepository{}
}

func (m *MockTagRepository) Create(ctx context.Context, tag domain.Tag) error {
	args := m.Called(ctx, tag)
	return args.Error(0)
}

func (m *MockTagRepository) Update(ctx context.Context, id uuid.UUID, name, color string) error {
	args := m.Called(ctx, id, name, color)
	return args.Error(0)
}

func (m *MockTagRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTagRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Tag, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*domain.Tag), args.Error(1)
}

func (m *MockTagRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Tag, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]domain.Tag), args.Error(1)
}

func (m *MockTagRepository) FindOwnedByIDs(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) ([]domain.Tag, error) {
	args := m.Called(ctx, ownerID, ids)
	return args.Get(0).([]domain.Tag), args.Error(1)
}

func (m *MockTagRepository) IncrementUsage(ctx context.Context, ids []uuid.UUID) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}

func (m *MockTagRepository) DecrementUsage(ctx context.Context, ids []uuid.UUID) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}

type MockFileTagRepository struct {
	mock.Mock
}

func NewMockFileTagRepository() *MockFileTagRepository {
	return &MockFileTagRepository{}
}

func (m *MockFileTagRepository) FindByFileID(ctx context.Context, fileID uuid.UUID) ([]domain.FileTag, error) {
	args := m.Called(ctx, fileID)
	return args.Get(0).([]domain.FileTag), args.Error(1)
}

func (m *MockFileTagRepository) CreateMany(ctx context.Context, fileID uuid.UUID, tagIDs []uuid.UUID) (int, error) {
	args := m.Called(ctx, fileID, tagIDs)
	return args.Int(0), args.Error(1)
}

func (m *MockFileTagRepository) Delete(ctx context.Context, fileID, tagID uuid.UUID) error {
	args := m.Called(ctx, fileID, tagID)
	return args.Error(0)
}

func (m *MockFileTagRepository) DeleteByFileID(ctx context.Context, fileID uuid.UUID) error {
	args := m.Called(ctx, fileID)
	return args.Error(0)
}

func (m *MockFileTagRepository) DeleteByTagID(ctx context.Context, tagID uuid.UUID) error {
	args := m.Called(ctx, tagID)
	return args.Error(0)
}

type MockShareRepository struct {
	mock.Mock
}

func NewMockShareRepository() *MockShareRepository {
	return &MockShareRepository{}
}

func (m *MockShareRepository) Create(ctx context.Context, share domain.FileShare) error {
	args := m.Called(ctx, share)
	return args.Error(0)
}

func (m *MockShareRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.FileShare, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*domain.FileShare), args.Error(1)
}

func (m *MockShareRepository) FindActiveByFileAndPrincipal(ctx context.Context, fileID, principalID uuid.UUID) (*domain.FileShare, error) {
	args := m.Called(ctx, fileID, principalID)
	return args.Get(0).(*domain.FileShare), args.Error(1)
}

func (m *MockShareRepository) Revoke(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockShareRepository) CountActiveByFile(ctx context.Context, fileID uuid.UUID) (int, error) {
	args := m.Called(ctx, fileID)
	return args.Int(0), args.Error(1)
}

func (m *MockShareRepository) ListActiveByFile(ctx context.Context, fileID uuid.UUID) ([]domain.FileShare, error) {
	args := m.Called(ctx, fileID)
	return args.Get(0).([]domain.FileShare), args.Error(1)
}

func (m *MockShareRepository) CountActiveFrom(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockShareRepository) CountActiveTo(ctx context.Context, principalID uuid.UUID) (int64, error) {
	args := m.Called(ctx, principalID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockShareRepository) ListOutgoing(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]domain.FileShare, error) {
	args := m.Called(ctx, ownerID, limit, offset)
	return args.Get(0).([]domain.FileShare), args.Error(1)
}

func (m *MockShareRepository) ListIncoming(ctx context.Context, principalID uuid.UUID, now time.Time, limit, offset int) ([]domain.FileShare, error) {
	args := m.Called(ctx, principalID, now, limit, offset)
	return args.Get(0).([]domain.FileShare), args.Error(1)
}

func (m *MockShareRepository) IncrementViewCount(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockShareRepository) IncrementDownloadCount(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockShareRepository) DeleteByFileID(ctx context.Context, fileID uuid.UUID) error {
	args := m.Called(ctx, fileID)
	return args.Error(0)
}

type MockAccessLogRepository struct {
	mock.Mock
}

func NewMockAccessLogRepository() *MockAccessLogRepository {
	return &MockAccessLogRepository{}
}

func (m *MockAccessLogRepository) Create(ctx context.Context, entry domain.AccessLogEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockAccessLogRepository) ListByFileID(ctx context.Context, fileID uuid.UUID, limit, offset int) ([]domain.AccessLogEntry, error) {
	args := m.Called(ctx, fileID, limit, offset)
	return args.Get(0).([]domain.AccessLogEntry), args.Error(1)
}

func (m *MockAccessLogRepository) CountByTypeForFile(ctx context.Context, fileID uuid.UUID) (map[domain.AccessType]int64, error) {
	args := m.Called(ctx, fileID)
	return args.Get(0).(map[domain.AccessType]int64), args.Error(1)
}

func (m *MockAccessLogRepository) CountByTypeForOwner(ctx context.Context, ownerID uuid.UUID) (map[domain.AccessType]int64, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(map[domain.AccessType]int64), args.Error(1)
}

type MockPrincipalDirectory struct {
	mock.Mock
}

func NewMockPrincipalDirectory() *MockPrincipalDirectory {
	return &MockPrincipalDirectory{}
}

func (m *MockPrincipalDirectory) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockUnitOfWork struct {
	mock.Mock
	fileRepo      *MockFileRepository
	tagRepo       *MockTagRepository
	fileTagRepo   *MockFileTagRepository
	shareRepo     *MockShareRepository
	accessLogRepo *MockAccessLogRepository
	principals    *MockPrincipalDirectory
}

func NewMockUnitOfWork() *MockUnitOfWork {
	return &MockUnitOfWork{
		fileRepo:      &MockFileRepository{},
		tagRepo:       &MockTagRepository{},
		fileTagRepo:   &MockFileTagRepository{},
		shareRepo:     &MockShareRepository{},
		accessLogRepo: &MockAccessLogRepository{},
		principals:    &MockPrincipalDirectory{},
	}
}

func (m *MockUnitOfWork) FileRepo() port.FileRepository {
	return m.fileRepo
}

func (m *MockUnitOfWork) TagRepo() port.TagRepository {
	return m.tagRepo
}

func (m *MockUnitOfWork) FileTagRepo() port.FileTagRepository {
	return m.fileTagRepo
}

func (m *MockUnitOfWork) ShareRepo() port.ShareRepository {
	return m.shareRepo
}

func (m *MockUnitOfWork) AccessLogRepo() port.AccessLogRepository {
	return m.accessLogRepo
}

func (m *MockUnitOfWork) Principals() port.PrincipalDirectory {
	return m.principals
}

func (m *MockUnitOfWork) Execute(ctx context.Context, fn func(uow port.UnitOfWork) error) error {
	args := m.Called(ctx, fn)

	if err := fn(m); err != nil {
		return err
	}

	return args.Error(0)
}

func (m *MockUnitOfWork) GetFileRepoMock() *MockFileRepository {
	return m.fileRepo
}

func (m *MockUnitOfWork) GetTagRepoMock() *MockTagRepository {
	return m.tagRepo
}

func (m *MockUnitOfWork) GetFileTagRepoMock() *MockFileTagRepository {
	return m.fileTagRepo
}

func (m *MockUnitOfWork) GetShareRepoMock() *MockShareRepository {
	return m.shareRepo
}

func (m *MockUnitOfWork) GetAccessLogRepoMock() *MockAccessLogRepository {
	return m.accessLogRepo
}

func (m *MockUnitOfWork) GetPrincipalsMock() *MockPrincipalDirectory {
	return m.principals
}
