package i18n

var englishStrings = Strings{
	"settings":                   "Settings",
	"primaryColor":               "Primary color",
	"change":                     "Change",
	"displayLanguage":            "Display language",
	"darkMode":                   "Dark mode",
	"realtime":                   "Translate as you type",
	"preventScreenLock":          "Prevent screen lock",
	"translateWhenPressingEnter": "Translate when pressing Enter",
	"chinaMode":                  "China mode",
	"chinaModeDesc":              "Use translate.google.cn for users in mainland China",
	"removeAds":                  "Remove ads",
	"restorePurchase":            "Restore purchase",
	"restorePurchaseDesc":        "Free for users who bought the app before May 15, 2017",
	"activated":                  "Activated",
	"rateWindowsStore":           "Rate on Windows Store",
	"rateMacAppStore":            "Rate on Mac App Store",
	"help":                       "Help",
	"website":                    "Website",
	"version":                    "Version",
	"somethingWentWrong":         "Something went wrong. Please try again.",
	"notQualified":               "Sorry, you are not qualified for this offer.",
	"processing":                 "Processing",
	"pinkRed":                    "Pink & Red",
	"indigo":                     "Indigo",
	"blue":                       "Blue",
	"cyan":                       "Cyan",
	"teal":                       "Teal",
	"green":                      "Green",
	"amber":                      "Amber",
	"orange":                     "Orange",
	"deepOrange":                 "Deep orange",
	"blueGrey":                   "Blue grey",
}

var vietnameseStrings = Strings{
	"settings":                   "Cài đặt",
	"primaryColor":               "Màu chủ đạo",
	"change":                     "Thay đổi",
	"displayLanguage":            "Ngôn ngữ hiển thị",
	"darkMode":                   "Chế độ tối",
	"realtime":                   "Dịch khi đang gõ",
	"preventScreenLock":          "Ngăn khoá màn hình",
	"translateWhenPressingEnter": "Dịch khi nhấn Enter",
	"chinaMode":                  "Chế độ Trung Quốc",
	"chinaModeDesc":              "Dùng translate.google.cn cho người dùng ở Trung Quốc đại lục",
	"removeAds":                  "Loại bỏ quảng cáo",
	"restorePurchase":            "Khôi phục giao dịch",
	"restorePurchaseDesc":        "Miễn phí cho người dùng đã mua ứng dụng trước ngày 15/05/2017",
	"activated":                  "Đã kích hoạt",
	"rateWindowsStore":           "Đánh giá trên Windows Store",
	"rateMacAppStore":            "Đánh giá trên Mac App Store",
	"help":                       "Trợ giúp",
	"website":                    "Trang web",
	"version":                    "Phiên bản",
	"somethingWentWrong":         "Đã có lỗi xảy ra. Vui lòng thử lại.",
	"notQualified":               "Rất tiếc, bạn không đủ điều kiện nhận ưu đãi này.",
	"processing":                 "Đang xử lý",
	"pinkRed":                    "Hồng & Đỏ",
	"indigo":                     "Chàm",
	"blue":                       "Xanh dương",
	"cyan":                       "Xanh lơ",
	"teal":                       "Xanh mòng két",
	"green":                      "Xanh lá",
	"amber":                      "Hổ phách",
	"orange":                     "Cam",
	"deepOrange":                 "Cam đậm",
	"blueGrey":                   "Xám xanh",
}

var chineseStrings = Strings{
	"settings":                   "设置",
	"primaryColor":               "主题色",
	"change":                     "更改",
	"displayLanguage":            "显示语言",
	"darkMode":                   "深色模式",
	"realtime":                   "输入时翻译",
	"preventScreenLock":          "阻止锁屏",
	"translateWhenPressingEnter": "按 Enter 键时翻译",
	"chinaMode":                  "中国模式",
	"chinaModeDesc":              "为中国大陆用户使用 translate.google.cn",
	"removeAds":                  "移除广告",
	"restorePurchase":            "恢复购买",
	"restorePurchaseDesc":        "2017 年 5 月 15 日前购买本应用的用户可免费使用",
	"activated":                  "已激活",
	"rateWindowsStore":           "在 Windows 应用商店评分",
	"rateMacAppStore":            "在 Mac App Store 评分",
	"help":                       "帮助",
	"website":                    "网站",
	"version":                    "版本",
	"somethingWentWrong":         "出错了，请重试。",
	"notQualified":               "抱歉，您不符合此优惠的条件。",
	"processing":                 "处理中",
	"pinkRed":                    "粉红",
	"indigo":                     "靛蓝",
	"blue":                       "蓝色",
	"cyan":                       "青色",
	"teal":                       "蓝绿",
	"green":                      "绿色",
	"amber":                      "琥珀",
	"orange":                     "橙色",
	"deepOrange":                 "深橙",
	"blueGrey":                   "蓝灰",
}

var japaneseStrings = Strings{
	"settings":                   "設定",
	"primaryColor":               "テーマカラー",
	"change":                     "変更",
	"displayLanguage":            "表示言語",
	"darkMode":                   "ダークモード",
	"realtime":                   "入力中に翻訳",
	"preventScreenLock":          "画面ロックを防ぐ",
	"translateWhenPressingEnter": "Enter キーで翻訳",
	"chinaMode":                  "中国モード",
	"chinaModeDesc":              "中国本土のユーザー向けに translate.google.cn を使用します",
	"removeAds":                  "広告を削除",
	"restorePurchase":            "購入を復元",
	"restorePurchaseDesc":        "2017 年 5 月 15 日以前に購入したユーザーは無料です",
	"activated":                  "有効",
	"rateWindowsStore":           "Windows ストアで評価",
	"rateMacAppStore":            "Mac App Store で評価",
	"help":                       "ヘルプ",
	"website":                    "ウェブサイト",
	"version":                    "バージョン",
	"somethingWentWrong":         "問題が発生しました。もう一度お試しください。",
	"notQualified":               "申し訳ありませんが、この特典の対象外です。",
	"processing":                 "処理中",
	"pinkRed":                    "ピンク & レッド",
	"indigo":                     "インディゴ",
	"blue":                       "ブルー",
	"cyan":                       "シアン",
	"teal":                       "ティール",
	"green":                      "グリーン",
	"amber":                      "アンバー",
	"orange":                     "オレンジ",
	"deepOrange":                 "ディープオレンジ",
	"blueGrey":                   "ブルーグレー",
}
