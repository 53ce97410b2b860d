package mocks

//go:generate mockery --name PostStore --srcpkg github.com/poststats-lab/project-poststats/internal/core/storage --output ./storage --outpkg storagemocks --with-expecter
//go:generate mockery --name SnapshotStore --srcpkg github.com/poststats-lab/project-poststats/internal/core/storage --output ./storage --outpkg storagemocks --with-expecter
