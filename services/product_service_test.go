package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/zt15864126114/mksxk/models"
)

type ProductServiceTestSuite struct {
	suite.Suite
	db  *gorm.DB
	svc InterfaceProductService
}

func TestProductServiceSuite(t *testing.T) {
	suite.Run(t, new(ProductServiceTestSuite))
}

func (s *ProductServiceTestSuite) SetupTest() {
	s.db = newTestDB(s.T())
	s.svc = NewProductService(s.db, newTestConfig(s.T()))

	// 三个上架产品和一个下架产品
	seed := []models.Product{
		{Name: "高效絮凝剂", Category: "水处理", Description: "污水处理用", Sort: 10, Status: models.ProductStatusActive},
		{Name: "混凝土外加剂", Category: "混凝土", Description: "早强型", Sort: 5, Status: models.ProductStatusActive},
		{Name: "缓凝剂", Category: "混凝土", Description: "夏季施工用", Sort: 5, Status: models.ProductStatusActive},
		{Name: "停产产品", Category: "水处理", Description: "已下架", Sort: 99, Status: models.ProductStatusHidden},
	}
	for i := range seed {
		require.NoError(s.T(), s.db.Create(&seed[i]).Error)
	}
}

func (s *ProductServiceTestSuite) TestPublicListOrdering() {
	products, total, err := s.svc.ListProducts(ProductListQuery{Page: 1, PageSize: 10})
	require.NoError(s.T(), err)
	require.EqualValues(s.T(), 3, total)
	require.Len(s.T(), products, 3)

	// sort 降序，sort 相同按 id 降序
	require.Equal(s.T(), "高效絮凝剂", products[0].Name)
	require.Equal(s.T(), "缓凝剂", products[1].Name)
	require.Equal(s.T(), "混凝土外加剂", products[2].Name)
}

func (s *ProductServiceTestSuite) TestAdminListSeesAllStatuses() {
	products, total, err := s.svc.ListProducts(ProductListQuery{Page: 1, PageSize: 10, IsAdmin: true})
	require.NoError(s.T(), err)
	require.EqualValues(s.T(), 4, total)
	require.Len(s.T(), products, 4)
	require.Equal(s.T(), "停产产品", products[0].Name) // sort 99 排最前
}

func (s *ProductServiceTestSuite) TestCategoryFilter() {
	products, total, err := s.svc.ListProducts(ProductListQuery{Page: 1, PageSize: 10, Category: "混凝土"})
	require.NoError(s.T(), err)
	require.EqualValues(s.T(), 2, total)
	for _, p := range products {
		require.Equal(s.T(), "混凝土", p.Category)
	}
}

func (s *ProductServiceTestSuite) TestKeywordFilterMatchesDescription() {
	_, total, err := s.svc.ListProducts(ProductListQuery{Page: 1, PageSize: 10, Keyword: "污水"})
	require.NoError(s.T(), err)
	require.EqualValues(s.T(), 1, total)
}

func (s *ProductServiceTestSuite) TestTotalInvariantAcrossPages() {
	// total 在同一过滤条件下不随分页变化，且各页条目数之和等于 total
	q := ProductListQuery{Page: 1, PageSize: 2, Category: "混凝土"}
	first, total1, err := s.svc.ListProducts(q)
	require.NoError(s.T(), err)

	q.Page = 2
	second, total2, err := s.svc.ListProducts(q)
	require.NoError(s.T(), err)

	require.Equal(s.T(), total1, total2)
	require.EqualValues(s.T(), total1, len(first)+len(second))

	q.Page, q.PageSize = 1, 50
	_, total3, err := s.svc.ListProducts(q)
	require.NoError(s.T(), err)
	require.Equal(s.T(), total1, total3)
}

func (s *ProductServiceTestSuite) TestGetByIDVisibility() {
	var hidden models.Product
	require.NoError(s.T(), s.db.Where("status = ?", models.ProductStatusHidden).First(&hidden).Error)

	// 公开访问看不到下架产品，管理端可以
	_, err := s.svc.GetProductByID(hidden.ID, false)
	require.ErrorIs(s.T(), err, ErrProductNotFound)

	got, err := s.svc.GetProductByID(hidden.ID, true)
	require.NoError(s.T(), err)
	require.Equal(s.T(), hidden.ID, got.ID)
}

func (s *ProductServiceTestSuite) TestUpdatePartialFields() {
	var product models.Product
	require.NoError(s.T(), s.db.Where("name = ?", "缓凝剂").First(&product).Error)

	updated, err := s.svc.UpdateProduct(product.ID, map[string]interface{}{"sort": 20})
	require.NoError(s.T(), err)
	require.Equal(s.T(), 20, updated.Sort)
	// 未提供的字段保持不变
	require.Equal(s.T(), product.Name, updated.Name)
	require.Equal(s.T(), product.Description, updated.Description)
	// update_time 被打点
	require.True(s.T(), updated.UpdateTime.After(product.UpdateTime) || updated.UpdateTime.Equal(product.UpdateTime))
}

func (s *ProductServiceTestSuite) TestUpdateEmptyFieldSetIsNoop() {
	var product models.Product
	require.NoError(s.T(), s.db.Where("name = ?", "缓凝剂").First(&product).Error)

	updated, err := s.svc.UpdateProduct(product.ID, map[string]interface{}{})
	require.NoError(s.T(), err)
	// 不发出SQL，update_time 不变
	require.True(s.T(), updated.UpdateTime.Equal(product.UpdateTime))
}

func (s *ProductServiceTestSuite) TestUpdateNotFound() {
	_, err := s.svc.UpdateProduct(9999, map[string]interface{}{"sort": 1})
	require.ErrorIs(s.T(), err, ErrProductNotFound)
}

func (s *ProductServiceTestSuite) TestDeleteIsPhysical() {
	var before int64
	require.NoError(s.T(), s.db.Model(&models.Product{}).Count(&before).Error)

	var product models.Product
	require.NoError(s.T(), s.db.Where("name = ?", "缓凝剂").First(&product).Error)
	require.NoError(s.T(), s.svc.DeleteProduct(product.ID))

	// 行被物理删除
	var after int64
	require.NoError(s.T(), s.db.Model(&models.Product{}).Count(&after).Error)
	require.Equal(s.T(), before-1, after)

	_, err := s.svc.GetProductByID(product.ID, true)
	require.ErrorIs(s.T(), err, ErrProductNotFound)
}
